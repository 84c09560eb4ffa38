//go:build unit

package reservation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"frv-web/internal/domain/reservation"
	"frv-web/tests/common/builder"
	"frv-web/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func lowercased(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out
}

func TestNormalize(t *testing.T) {
	b := builder.NewReservationBuilder()
	expected := b.BuildDomain()

	t.Run("capitalised keys", func(t *testing.T) {
		actual := reservation.Normalize(b.BuildRaw())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lowercase keys", func(t *testing.T) {
		actual := reservation.Normalize(lowercased(b.BuildRaw()))

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("capitalised key wins over lowercase", func(t *testing.T) {
		raw := b.BuildRaw()
		testutil.Field("nombre", "otro")(raw)

		assert.Equal(t, b.Name, reservation.Normalize(raw).Name)
	})

	t.Run("nil capitalised value falls back to lowercase", func(t *testing.T) {
		raw := b.BuildRaw()
		raw["Nombre"] = nil
		raw["nombre"] = "Ana"

		assert.Equal(t, "Ana", reservation.Normalize(raw).Name)
	})

	t.Run("amount and status alternatives", func(t *testing.T) {
		tests := []struct {
			name       string
			mutate     []func(map[string]any)
			wantAmount string
			wantStatus reservation.Status
		}{
			{
				name:       "Monto and Status",
				mutate:     []func(map[string]any){testutil.Field("Costo", nil), testutil.Field("Monto", 900), testutil.Field("Estado", nil), testutil.Field("Status", "COMPLETADA")},
				wantAmount: "900",
				wantStatus: reservation.StatusCompleted,
			},
			{
				name:       "lowercase monto and status",
				mutate:     []func(map[string]any){testutil.Field("Costo", nil), testutil.Field("monto", 1250.5), testutil.Field("Estado", nil), testutil.Field("status", "PENDIENTE")},
				wantAmount: "1250.5",
				wantStatus: reservation.StatusPending,
			},
			{
				name:       "nothing present",
				mutate:     []func(map[string]any){testutil.Field("Costo", nil), testutil.Field("Estado", nil)},
				wantAmount: "",
				wantStatus: "",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				raw := b.BuildRaw()
				for _, m := range tt.mutate {
					m(raw)
				}

				actual := reservation.Normalize(raw)

				assert.Equal(t, tt.wantAmount, actual.Amount)
				assert.Equal(t, tt.wantStatus, actual.Status)
			})
		}
	})

	t.Run("numbers from JSON keep their text form", func(t *testing.T) {
		var raw map[string]any
		dec := json.NewDecoder(strings.NewReader(`{"Id": 12345678901, "Costo": 15000.00}`))
		dec.UseNumber()
		require.NoError(t, dec.Decode(&raw))

		actual := reservation.Normalize(raw)

		assert.Equal(t, "12345678901", actual.ID)
		assert.Equal(t, "15000.00", actual.Amount)
	})

	t.Run("large float has no exponent", func(t *testing.T) {
		actual := reservation.Normalize(map[string]any{"Id": float64(12345678901)})

		assert.Equal(t, "12345678901", actual.ID)
	})

	t.Run("raw map is not modified", func(t *testing.T) {
		raw := lowercased(b.BuildRaw())
		before := testutil.DtoMap(t, raw)

		_ = reservation.Normalize(raw)

		if diff := cmp.Diff(before, testutil.DtoMap(t, raw)); diff != "" {
			t.Errorf("raw map changed (-before +after):\n%s", diff)
		}
	})
}

func TestNormalizeAll(t *testing.T) {
	assert.Empty(t, reservation.NormalizeAll(nil))

	raws := []map[string]any{
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = "1" }).BuildRaw(),
		lowercased(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = "2" }).BuildRaw()),
	}

	actual := reservation.NormalizeAll(raws)

	require.Len(t, actual, 2)
	assert.Equal(t, "1", actual[0].ID)
	assert.Equal(t, "2", actual[1].ID)
}

func TestCreatedID(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{name: "lowercase id", raw: map[string]any{"id": "7"}, want: "7"},
		{name: "capitalised Id", raw: map[string]any{"Id": json.Number("8")}, want: "8"},
		{name: "lowercase wins", raw: map[string]any{"id": "7", "Id": "8"}, want: "7"},
		{name: "no identifier", raw: map[string]any{"Nombre": "x"}, want: reservation.CreatedIDFallback},
		{name: "nil body", raw: nil, want: "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.CreatedID(tt.raw))
		})
	}
}
