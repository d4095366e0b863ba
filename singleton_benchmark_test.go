package singleton_test

import (
	"errors"
	"sync"
	"testing"

	singleton "github.com/probablyarth/singleton-go"
)

type benchService struct{ id int }

// ---------------------------------------------------------------------------
// Single-goroutine benchmarks: measure per-call latency.
// ---------------------------------------------------------------------------

// How fast is a stored instance returned (RLock + map lookup)?
func BenchmarkHit(b *testing.B) {
	get := singleton.Of[benchService](singleton.WithRegistry(singleton.NewRegistry()))
	get()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		get()
	}
}

// How fast is a first construction (singleflight + write)? A fresh registry
// per iteration keeps every call on the slow path.
func BenchmarkFirstCall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		singleton.Of[benchService](singleton.WithRegistry(singleton.NewRegistry()))()
	}
}

// Errors are not stored. Measure the retry path.
func BenchmarkErrorNotStored(b *testing.B) {
	fail := errors.New("fail")
	get := singleton.New(func() (*benchService, error) {
		return nil, fail
	}, singleton.WithRegistry(singleton.NewRegistry()))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		get()
	}
}

// ---------------------------------------------------------------------------
// Concurrent benchmarks: measure throughput under contention.
// ---------------------------------------------------------------------------

// 1000 goroutines racing for the first construction of one type.
func BenchmarkConcurrent_FirstCall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		get := singleton.Of[benchService](singleton.WithRegistry(singleton.NewRegistry()))
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func() {
				defer wg.Done()
				get()
			}()
		}
		wg.Wait()
	}
}

// b.RunParallel: stored instance under true parallel reader contention.
func BenchmarkParallel_Hit(b *testing.B) {
	get := singleton.Of[benchService](singleton.WithRegistry(singleton.NewRegistry()))
	get()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			get()
		}
	})
}

// ---------------------------------------------------------------------------
// sync.Once comparison: a hand-written single-type singleton.
// ---------------------------------------------------------------------------

func BenchmarkSyncOnce_Hit(b *testing.B) {
	var (
		once sync.Once
		v    *benchService
	)
	get := func() *benchService {
		once.Do(func() { v = &benchService{} })
		return v
	}
	get()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		get()
	}
}
