package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvillar/cardsheet/card"
)

func records(n int) []card.Record {
	out := make([]card.Record, n)
	for i := range out {
		out[i] = card.Record{Question: fmt.Sprintf("Q%d", i), Back: fmt.Sprintf("A%d", i)}
	}
	return out
}

func TestAssembleAlwaysFillsDeck(t *testing.T) {
	for _, n := range []int{0, 3, 10, 500} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			d, sum := Assemble(records(n))
			assert.Len(t, d.Records(), Size)
			assert.Equal(t, n, sum.Parsed)
			assert.Equal(t, min(n, Size), sum.Used)
			assert.Equal(t, max(n-Size, 0), sum.Dropped)
			assert.Equal(t, Size-sum.Used, sum.Blank)
		})
	}
}

func TestAssembleKeepsOrderAndPadsWithBlanks(t *testing.T) {
	d, _ := Assemble(records(3))
	assert.Equal(t, "Q0", d[0].Question)
	assert.Equal(t, "Q2", d[2].Question)
	for i := 3; i < Size; i++ {
		assert.Equal(t, card.Blank, d[i], "slot %d", i)
	}
}

func TestAssembleDropsExcess(t *testing.T) {
	d, _ := Assemble(records(12))
	assert.Equal(t, "Q9", d[Size-1].Question)
}
