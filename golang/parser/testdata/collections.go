package collections

import (
	"sort"
	"strings"
)

type Kind int

const (
	KindNone Kind = iota
	KindList
	KindSet
	KindMap
)

const mask = 1<<8 - 1

var kindNames = [...]string{"none", "list", "set", "map"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

type Stack struct {
	items []int
}

func (s *Stack) Push(v ...int) { s.items = append(s.items, v...) }

func (s *Stack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

type pair struct {
	key   string
	count int
}

func WordCount(text string) []pair {
	counts := map[string]int{}
	for _, w := range strings.Fields(text) {
		counts[strings.ToLower(w)]++
	}
	pairs := make([]pair, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	return pairs
}

func Reverse(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

func Remove(a []int, i int) []int {
	return append(a[:i], a[i+1:]...)
}

func Matrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1.0
	}
	return m
}

var table = []struct {
	in   string
	want []string
}{
	{"a b", []string{"a", "b"}},
	{"", nil},
}

var lookup = map[string]func(int) int{
	"double": func(x int) int { return x * 2 },
	"negate": func(x int) int { return -x },
	"invert": func(x int) int { return ^x & mask },
}

func Apply(name string, x int) (int, bool) {
	if f, ok := lookup[name]; ok {
		return f(x), true
	}
	return x, false
}

func Filter(a []int, keep func(int) bool) (out []int) {
	for _, v := range a {
		if !keep(v) {
			continue
		}
		out = append(out, v)
	}
	return
}

func Keys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	delete(m, "")
	return keys
}

func Bits(x uint64) (n int) {
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

var buf [64]byte

func Fill(b byte) []byte {
	for i := range buf {
		buf[i] = b
	}
	n := copy(buf[:8], "prefix")
	return buf[n:]
}
