// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func referenceHMAC(key string, data []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	body := []byte(`{"email":"a@x.com","password":"p"}`)

	assert.Equal(t, referenceHMAC(testHashKey, body), h.SumHex(body))
	assert.Equal(t, h.SumHex(body), h.SumHex(body), "digest must be deterministic")
}

func TestHasher_DifferentKeys(t *testing.T) {
	body := []byte(`{"email":"a@x.com"}`)

	assert.NotEqual(t, NewHasher("key-one").SumHex(body), NewHasher("key-two").SumHex(body))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	body := []byte(`{"k":"v"}`)

	tests := []struct {
		name string
		sum  string
		want bool
	}{
		{name: "matching", sum: referenceHMAC(testHashKey, body), want: true},
		{name: "other body", sum: referenceHMAC(testHashKey, []byte(`{}`)), want: false},
		{name: "not hex", sum: "zz", want: false},
		{name: "empty", sum: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(body, tt.sum))
		})
	}
}

func TestHasher_Enabled(t *testing.T) {
	assert.True(t, NewHasher("k").Enabled())
	assert.False(t, NewHasher("").Enabled())

	var nilHasher *Hasher
	assert.False(t, nilHasher.Enabled())
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	body := []byte("payload")
	want := referenceHMAC(testHashKey, body)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.SumHex(body)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func TestEqualHashed(t *testing.T) {
	assert.True(t, EqualHashed("secret", "secret", testHashKey))
	assert.False(t, EqualHashed("secret", "Secret", testHashKey))
	assert.False(t, EqualHashed("secret", "secret-longer", testHashKey))
	assert.False(t, EqualHashed("", "x", testHashKey))
}
