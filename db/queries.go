package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Play library queries

//go:embed sql/upsert_play.sql
var UpsertPlaySQL string

//go:embed sql/select_plays.sql
var SelectPlaysSQL string

//go:embed sql/select_play_by_name.sql
var SelectPlayByNameSQL string

//go:embed sql/delete_play.sql
var DeletePlaySQL string
