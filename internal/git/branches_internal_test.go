package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLeftRight(t *testing.T) {
	ahead, behind, err := parseLeftRight("3\t1")
	require.NoError(t, err)
	require.Equal(t, 3, ahead)
	require.Equal(t, 1, behind)

	_, _, err = parseLeftRight("3")
	require.Error(t, err)
	_, _, err = parseLeftRight("x 1")
	require.Error(t, err)
}

func TestParseLogRecords(t *testing.T) {
	output := "aaa\x1fAda\x1f2024-01-02\x1fsecond\x1e\nbbb\x1fAda\x1f2024-01-01\x1ffirst: with \x1f sep\x1e"
	entries := parseLogRecords(output)
	require.Len(t, entries, 2)
	require.Equal(t, LogEntry{Hash: "aaa", Author: "Ada", Date: "2024-01-02", Subject: "second"}, entries[0])
	require.Equal(t, "first: with \x1f sep", entries[1].Subject)
}
