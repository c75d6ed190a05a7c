package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Person struct {
	UID  string
	Name string
	Age  int
}

var (
	person = Person{UID: "123", Name: "Marc", Age: 42}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[Person](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Get put", func(t *testing.T) {
		err = ps.Put(c, person.UID, person)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, Person{UID: "123", Name: "Marc", Age: 42}, p)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, all, []Person{person})
	})

	t.Run("Query on equality", func(t *testing.T) {
		err = ps.Put(c, "456", Person{UID: "456", Name: "Eva", Age: 40})
		assert.NoError(t, err)

		matches, err := ps.Query(c, []Filter{{Field: "Name", Compare: "=", Value: "Eva"}}, "Name")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, "456", matches[0].UID)
	})

	t.Run("ReplaceAll", func(t *testing.T) {
		err = ps.ReplaceAll(c, map[string]Person{
			"789": {UID: "789", Name: "Pien", Age: 12},
		})
		assert.NoError(t, err)

		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, all, []Person{{UID: "789", Name: "Pien", Age: 12}})

		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestTransactionScopedPerStore(t *testing.T) {
	c := context.TODO()
	personStore, cleanup, err := NewInMemoryStore[Person](c)
	assert.NoError(t, err)
	defer cleanup()
	otherStore, otherCleanup, err := NewInMemoryStore[Person](c)
	assert.NoError(t, err)
	defer otherCleanup()

	// Readers of the other store keep their own synchronization while the
	// first store's transaction writes to it.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_, _, err := otherStore.Get(c, person.UID)
			assert.NoError(t, err)
		}
	}()

	err = personStore.RunInTransaction(c, func(tc context.Context) error {
		err := personStore.Put(tc, person.UID, person)
		if err != nil {
			return err
		}
		return otherStore.Put(tc, person.UID, person)
	})
	assert.NoError(t, err)
	<-done

	_, found, err := otherStore.Get(c, person.UID)
	assert.NoError(t, err)
	assert.True(t, found)
}
