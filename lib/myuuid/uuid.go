package myuuid

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// Crockford base32: no I, L, O or U, so refs stay readable over the phone.
const refAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const refLength = 12

type RealUUIDer struct{}

func (u RealUUIDer) Create() string {
	return uuid.New().String()
}

func (u RealUUIDer) CreateShortRef() string {
	buf := make([]byte, refLength)
	_, err := rand.Read(buf)
	if err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}

	return string(buf)
}
