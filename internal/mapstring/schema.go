// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package mapstring

// FieldSchema describes one field of a record in wire order.
type FieldSchema struct {
	Name     string
	Type     string
	Optional bool
}

// RecordSchema is the ordered field list of a record.
type RecordSchema struct {
	Name   string
	Fields []FieldSchema
}

// field is one row of a record's field-order table.
type field[R any] struct {
	name     string
	typ      string
	optional bool
	decode   func(*Cursor, *R) error
}

// record is a field-order table. Fields are decoded strictly in table order, which must match the encoder.
type record[R any] struct {
	name   string
	fields []field[R]
}

func required[R, T any](name string, d decoder[T], at func(*R) *T) field[R] {
	return field[R]{
		name: name,
		typ:  d.name,
		decode: func(c *Cursor, r *R) error {
			v, err := d.read(c)
			if err != nil {
				return err
			}
			*at(r) = v
			return nil
		},
	}
}

func optional[R, T any](name string, d decoder[T], at func(*R) *Optional[T]) field[R] {
	f := required(name, optionalOf(d), at)
	f.typ = d.name
	f.optional = true
	return f
}

func (r record[R]) read(c *Cursor) (R, error) {
	var v R
	for _, f := range r.fields {
		if err := f.decode(c, &v); err != nil {
			var zero R
			return zero, withPath(err, f.name)
		}
	}
	return v, nil
}

func (r record[R]) decoder() decoder[R] { return decoder[R]{name: r.name, read: r.read} }

func (r record[R]) schema() RecordSchema {
	s := RecordSchema{Name: r.name, Fields: make([]FieldSchema, 0, len(r.fields))}
	for _, f := range r.fields {
		s.Fields = append(s.Fields, FieldSchema{Name: f.name, Type: f.typ, Optional: f.optional})
	}
	return s
}

// Schemas returns the field-order table of every record, leaf records first and the exchange envelope last.
func Schemas() []RecordSchema {
	return []RecordSchema{
		frequencySizeRichnessRecord.schema(),
		autoplaceSettingRecord.schema(),
		orientationRecord.schema(),
		boundingBoxRecord.schema(),
		cliffSettingsRecord.schema(),
		mapGenSettingsRecord.schema(),
		pollutionRecord.schema(),
		steeringValuesRecord.schema(),
		steeringRecord.schema(),
		enemyEvolutionRecord.schema(),
		enemyExpansionRecord.schema(),
		unitGroupRecord.schema(),
		pathFinderRecord.schema(),
		difficultySettingsRecord.schema(),
		mapSettingsRecord.schema(),
		exchangeRecord.schema(),
	}
}

// Schema returns the field-order table of the named record.
func Schema(name string) (RecordSchema, bool) {
	for _, s := range Schemas() {
		if s.Name == name {
			return s, true
		}
	}
	return RecordSchema{}, false
}
