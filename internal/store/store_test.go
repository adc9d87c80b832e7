package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID   int
	Name string
}

func TestCollection_InsertAssignsMonotonicIDs(t *testing.T) {
	c := NewCollection[record]()

	for i := 1; i <= 50; i++ {
		item := c.Insert(func(id int) record {
			return record{ID: id, Name: "r"}
		})
		assert.Equal(t, i, item.ID)
	}
	assert.Equal(t, 50, c.Len())
}

func TestCollection_ConcurrentInsertsNeverRepeatIDs(t *testing.T) {
	c := NewCollection[record]()

	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan int, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				item := c.Insert(func(id int) record {
					return record{ID: id}
				})
				ids <- item.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestCollection_GetAbsentIsNotAnError(t *testing.T) {
	c := NewCollection[record]()

	_, ok := c.Get(99)
	assert.False(t, ok)
}

func TestCollection_UpdateMissingIDFails(t *testing.T) {
	c := NewCollection[record]()
	c.Insert(func(id int) record { return record{ID: id, Name: "only"} })

	// An empty merge must still fail on a missing id.
	_, ok := c.Update(42, func(r record) record { return r })
	assert.False(t, ok)

	updated, ok := c.Update(1, func(r record) record { return r })
	assert.True(t, ok)
	assert.Equal(t, "only", updated.Name)
}

func TestCollection_ScanPreservesInsertionOrder(t *testing.T) {
	c := NewCollection[record]()
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		c.Insert(func(id int) record { return record{ID: id, Name: name} })
	}

	matched := c.Scan(func(r record) bool { return r.Name != "c" })

	names := make([]string, 0, len(matched))
	for _, r := range matched {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a", "b", "d"}, names)
}

func TestCollection_UpdateWhere(t *testing.T) {
	c := NewCollection[record]()
	for _, name := range []string{"x", "y", "x"} {
		name := name
		c.Insert(func(id int) record { return record{ID: id, Name: name} })
	}

	n := c.UpdateWhere(
		func(r record) bool { return r.Name == "x" },
		func(r record) record {
			r.Name = "z"
			return r
		},
	)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, c.Count(func(r record) bool { return r.Name == "z" }))

	// No matches is a no-op, not a failure.
	assert.Equal(t, 0, c.UpdateWhere(
		func(r record) bool { return r.Name == "missing" },
		func(r record) record { return r },
	))
}

func TestPortal_SeedOnce(t *testing.T) {
	p := NewPortal()

	runs := 0
	err := p.SeedOnce(func() error {
		runs++
		return nil
	})
	assert.NoError(t, err)

	err = p.SeedOnce(func() error {
		runs++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, runs)
}
