// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package mapstring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonNames returns the JSON field names of struct type t in declaration order.
func jsonNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "-" {
			names = append(names, name)
		}
	}
	return names
}

func fieldByJSONName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		if n, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ","); n == name {
			return t.Field(i), true
		}
	}
	return reflect.StructField{}, false
}

func TestSchemaMatchesEncodedFieldOrder(t *testing.T) {
	types := map[string]reflect.Type{
		"frequency_size_richness": reflect.TypeOf(FrequencySizeRichness{}),
		"autoplace_setting":       reflect.TypeOf(AutoplaceSetting{}),
		"orientation":             reflect.TypeOf(Orientation{}),
		"bounding_box":            reflect.TypeOf(BoundingBox{}),
		"cliff_settings":          reflect.TypeOf(CliffSettings{}),
		"map_gen_settings":        reflect.TypeOf(MapGenSettings{}),
		"pollution":               reflect.TypeOf(Pollution{}),
		"steering_values":         reflect.TypeOf(SteeringValues{}),
		"steering":                reflect.TypeOf(Steering{}),
		"enemy_evolution":         reflect.TypeOf(EnemyEvolution{}),
		"enemy_expansion":         reflect.TypeOf(EnemyExpansion{}),
		"unit_group":              reflect.TypeOf(UnitGroup{}),
		"path_finder":             reflect.TypeOf(PathFinder{}),
		"difficulty_settings":     reflect.TypeOf(DifficultySettings{}),
		"map_settings":            reflect.TypeOf(MapSettings{}),
	}
	schemas := Schemas()
	require.Len(t, schemas, len(types)+1)
	for _, s := range schemas {
		if s.Name == "exchange" {
			continue
		}
		typ, ok := types[s.Name]
		require.True(t, ok, s.Name)
		var names []string
		for _, f := range s.Fields {
			names = append(names, f.Name)
			sf, found := fieldByJSONName(typ, f.Name)
			require.True(t, found, "%s.%s", s.Name, f.Name)
			isOptional := strings.HasPrefix(sf.Type.Name(), "Optional[")
			assert.Equal(t, isOptional, f.Optional, "%s.%s", s.Name, f.Name)
		}
		assert.Equal(t, jsonNames(typ), names, s.Name)
	}
}

func TestSchemaFieldCounts(t *testing.T) {
	counts := map[string]int{
		"map_gen_settings":    14,
		"pollution":           12,
		"steering_values":     4,
		"enemy_evolution":     4,
		"enemy_expansion":     13,
		"unit_group":          13,
		"path_finder":         33,
		"difficulty_settings": 4,
		"map_settings":        8,
	}
	for name, n := range counts {
		s, ok := Schema(name)
		require.True(t, ok, name)
		assert.Len(t, s.Fields, n, name)
	}
	_, ok := Schema("nope")
	assert.False(t, ok)
}

func TestSchemaWireOrder(t *testing.T) {
	exchange, ok := Schema("exchange")
	require.True(t, ok)
	assert.Equal(t, []FieldSchema{
		{Name: "version", Type: "version"},
		{Name: "reserved", Type: "u8"},
		{Name: "map_gen_settings", Type: "map_gen_settings"},
		{Name: "map_settings", Type: "map_settings"},
		{Name: "checksum", Type: "u32"},
	}, exchange.Fields)

	gen, _ := Schema("map_gen_settings")
	assert.Equal(t, FieldSchema{Name: "autoplace_controls", Type: "map<string,frequency_size_richness>"}, gen.Fields[2])
	assert.Equal(t, FieldSchema{Name: "starting_points", Type: "array<point>"}, gen.Fields[11])

	pathFinder, _ := Schema("path_finder")
	assert.Equal(t, FieldSchema{Name: "overload_levels", Type: "array<u32>", Optional: true}, pathFinder.Fields[30])
	assert.Equal(t, FieldSchema{Name: "negative_path_cache_delay_interval", Type: "u32", Optional: true}, pathFinder.Fields[32])

	difficulty, _ := Schema("difficulty_settings")
	assert.Equal(t, FieldSchema{Name: "research_queue_setting", Type: "enum<research_queue_setting>"}, difficulty.Fields[3])
}
