/*
Package fromrow binds single database rows to typed Go records. It is a
binding layer, not a database client: it consumes an abstract [Row] (column
lookup by name, typed decode per column) supplied by a driver, and produces
record construction logic from it. You keep writing plain SQL; fromrow only
turns one fetched row into one value.

# Overview

A record type gets a [Schema] once — built explicitly from field declarations
or derived from `db` struct tags — and that immutable schema is reused for
every bind. Each bind walks the declared fields in order against a
caller-supplied row: decode the field's column, optionally convert, store.
The first failure aborts the bind with the failing column attached; a record
is either fully bound or not constructed at all.

# Declaring fields

Fields are declared with one strategy each:

  - [Column] decodes the column directly as the field's type.
  - [Convert] decodes an intermediate type and applies an infallible
    conversion.
  - [TryConvert] decodes an intermediate type and applies a fallible
    conversion; rejections surface as a [ConvertError].
  - [Flatten] binds a nested record, through its own schema, from the same
    row. Flattened fields share the row's flat column namespace; nothing is
    prefixed or renamed.

A field reads the column named exactly like the declared field unless
[WithColumn] renames it. Matching is exact-string: no case folding, no
normalization.

	todos := fromrow.NewSchema(
		fromrow.Column("id", func(t *Todo, v int64) { t.ID = v }, fromrow.WithColumn("todo_id")),
		fromrow.Column("text", func(t *Todo, v string) { t.Text = v }),
		fromrow.Flatten(users, func(t *Todo, u User) { t.User = u }),
	)

[Derive] builds the same thing from struct tags for the common
direct-and-flatten case:

	type Todo struct {
		ID   int64  `db:"todo_id"`
		Text string `db:"text"`
		User User   `db:",flatten"`
	}

	todos := fromrow.Derive[Todo]()

# Binding

[Schema.Bind] returns the record or a [*BindError] naming the first failing
column and wrapping the cause ([*DecodeError] or [*ConvertError]).
[Schema.MustBind] is the strict form: it panics on failure and exists for
rows the caller has already guaranteed to match; never use it when a
mismatch is an expected outcome.

Rows come from anywhere that can implement the one-method [Row] contract: [MapRow] wraps an in-memory map, and [ScanRow] adapts the current
row of a *sql.Rows. [Get] and [Query] wrap the usual database/sql fetch
loops for convenience; they execute your SQL verbatim against any
database/sql driver.

# Concurrency

Schemas are immutable after construction and safe for concurrent use;
binding holds no state between calls and never retains the row. The rows
themselves follow their driver's rules.

# Caveats

The schema does not validate column collisions. If a rename collides with a
sibling's column, or a flattened record's columns overlap an outer field's,
each field still decodes independently and reads the shared column more than
once; which is rarely what you want, and the behavior is
implementation-defined. Column/record shape mismatches are discovered at
bind time, not compile time: prefer explicit column lists over SELECT * to
keep bindings stable.
*/
package fromrow
