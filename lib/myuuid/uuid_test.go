package myuuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateShortRef(t *testing.T) {
	uuider := RealUUIDer{}

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		ref := uuider.CreateShortRef()

		assert.Len(t, ref, refLength)
		for _, ch := range ref {
			assert.True(t, strings.ContainsRune(refAlphabet, ch), "unexpected character %q in ref %s", ch, ref)
		}

		assert.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}
