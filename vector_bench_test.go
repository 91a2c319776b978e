package smallvec

import "testing"

func BenchmarkPushInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v Vector[int64, [8]int64]
		for j := int64(0); j < 8; j++ {
			v.Push(j)
		}
	}
}

func BenchmarkPushSpilled(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v Vector[int64, [8]int64]
		for j := int64(0); j < 64; j++ {
			v.Push(j)
		}
	}
}

func BenchmarkSliceAppendBaseline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s []int64
		for j := int64(0); j < 8; j++ {
			s = append(s, j)
		}
		if len(s) != 8 {
			b.Fatal("bad length")
		}
	}
}

func BenchmarkMoveFromSpilled(b *testing.B) {
	var v Vector[int64, [8]int64]
	for j := int64(0); j < 1024; j++ {
		v.Push(j)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := v.Clone()
		var dst Vector[int64, [8]int64]
		dst.MoveFrom(&src)
	}
}
