// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openshelf authors

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildListReservationsQuery_SQLContainsParts(t *testing.T) {
	bookID := "b7e2a1d0-5c3f-4e88-9d41-2a6f0c9e7712"

	query, args, err := buildListReservationsQuery(bookID, 10, 20)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, bookID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from reservations r")
	require.Contains(t, q, "left join users u")
	require.Contains(t, q, "where")
	require.Contains(t, q, "r.book_id")
	require.Contains(t, q, "order by r.reservation_date, r.id")
	require.Contains(t, q, "offset 10")
	require.Contains(t, q, "limit 20")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// the orphan flag column must be part of the projection
	require.Contains(t, q, "u.id is not null as user_found")
}

func Test_buildListReservationsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListReservationsQuery("book-id", 0, 20)
	require.NoError(t, err)

	q := strings.ToLower(query)

	cols := []string{
		"r.id",
		"r.book_id",
		"r.user_id",
		"r.state",
		"r.reservation_date",
		"u.forenames",
		"u.surname",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildCountReservationsQuery(t *testing.T) {
	bookID := "book-id"

	query, args, err := buildCountReservationsQuery(bookID)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, bookID, args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "from reservations r")
	// INNER JOIN, not LEFT: the count must match the listable rows
	require.Contains(t, q, "join users u")
	require.NotContains(t, q, "left join")
	require.Contains(t, query, "$1")
}
