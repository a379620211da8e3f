package control

import (
	"fmt"
	"os"
	"time"
)

type Celsius float64

func (c Celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

type Point struct{ X, Y int }

var origin = Point{}

func Classify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int, int64:
		return "integer"
	case []int:
		return fmt.Sprint("slice of ", len(x))
	case map[string]int:
		return "map"
	case func():
		return "func"
	case fmt.Stringer:
		return x.String()
	case error:
		return "error: " + x.Error()
	default:
		return "other"
	}
}

func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func Grade(score int) (g string) {
	switch s := score / 10; s {
	case 10, 9:
		g = "A"
	case 8:
		g = "B"
		fallthrough
	case 7:
		g += "+"
	default:
		g = "F"
	}
	return
}

func Search(grid [][]int, target int) (int, int, bool) {
outer:
	for i, row := range grid {
		for j, v := range row {
			if v == target {
				return i, j, true
			}
			if v > target {
				continue outer
			}
		}
	}
	return -1, -1, false
}

func Retry(attempts int, f func() error) (err error) {
	i := 0
loop:
	if i >= attempts {
		goto done
	}
	if err = f(); err == nil {
		return nil
	}
	i++
	time.Sleep(time.Duration(i) * 10 * time.Millisecond)
	goto loop
done:
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}

func Ticker(stop <-chan struct{}, out chan<- int) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	n := 0
	for {
		select {
		case <-stop:
			return
		case t := <-tick.C:
			_ = t
			n++
			out <- n
		default:
			if n > 100 {
				break
			}
		}
	}
}

func Compare(p, q Point) bool {
	if p == (Point{1, 2}) {
		return true
	}
	return p.X == q.X && p.Y == q.Y || p == origin
}

func Main() {
	var (
		temps = []Celsius{-40, 0, 36.6}
		sum   Celsius
	)
	for _, t := range temps {
		sum += t
	}
	avg := sum / Celsius(len(temps))
	if avg < 0 {
		fmt.Fprintln(os.Stderr, "cold:", avg)
	} else if avg < 20 {
		fmt.Println("mild:", avg)
	} else {
		fmt.Println("warm:", avg) // comment after a statement
	}

	/* block comment */
	f := (*Point).String2
	_ = f
	ptr := &Point{X: 1}
	ptr.X, ptr.Y = ptr.Y, ptr.X
	var iface interface{} = ptr
	if p, ok := iface.(*Point); ok {
		fmt.Println(p)
	}
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	v, ok := <-ch
	_, _ = v, ok
	c := complex(1, 2i)
	_ = real(c) + imag(c)
	r := 'x'
	s := `raw
string`
	fmt.Println(r, s, 0x1F, 0o17, 0b101, 1_000, 1e3, .5)
}

func (p *Point) String2() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
