//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"frv-web/internal/domain/reservation"
	"frv-web/tests/common/authtest"
	"frv-web/tests/common/builder"

	"github.com/gin-gonic/gin"
)

// DefaultCapacity is how many reservations the fake API accepts per date.
const DefaultCapacity = 3

// FakeReservationAPI plays the Reservation API for the e2e suites: in-memory bookings,
// one admin account and bearer token checks on the admin endpoints.
type FakeReservationAPI struct {
	t      *testing.T
	server *httptest.Server

	mu           sync.Mutex
	token        string
	capacity     int
	nextID       int
	reservations []map[string]any
	calls        []string
}

func NewFakeReservationAPI(t *testing.T) *FakeReservationAPI {
	t.Helper()

	f := &FakeReservationAPI{t: t}
	f.Reset()

	engine := gin.New()
	engine.Use(f.record)
	api := engine.Group("/api")
	api.POST("/admin/login", f.login)
	api.GET("/reservations/availability", f.availability)
	api.POST("/reservations", f.create)

	admin := api.Group("/reservations", f.requireToken)
	admin.GET("", f.list)
	admin.PUT("/:id/status", f.updateStatus)
	admin.DELETE("/:id", f.remove)

	f.server = httptest.NewServer(engine)
	t.Cleanup(f.server.Close)
	return f
}

// BaseURL is what RESERVATION_API_BASE_URL points at.
func (f *FakeReservationAPI) BaseURL() string {
	return f.server.URL + "/api"
}

// Reset restores the seeded bookings and a fresh admin token.
func (f *FakeReservationAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = authtest.ValidToken(f.t)
	f.capacity = DefaultCapacity
	f.nextID = 100
	f.calls = nil
	f.reservations = []map[string]any{
		builder.NewReservationBuilder().BuildRaw(),
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = "43"
			b.Name = "María Gómez"
			b.Time = "11:00:00"
		}).BuildRaw(),
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = "44"
			b.Name = "Carlos Ruiz"
			b.Date = "2025-03-15"
		}).BuildRaw(),
	}
}

// RevokeTokens invalidates every token handed out so far, like a server-side logout.
func (f *FakeReservationAPI) RevokeTokens() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = authtest.GenerateToken(f.t, "rotated", time.Now().Add(2*time.Hour))
}

func (f *FakeReservationAPI) Has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indexOf(id) >= 0
}

func (f *FakeReservationAPI) Status(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.indexOf(id); i >= 0 {
		status, _ := f.reservations[i]["Estado"].(string)
		return status
	}
	return ""
}

// Calls lists the requests received, as "METHOD /path".
func (f *FakeReservationAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeReservationAPI) record(c *gin.Context) {
	f.mu.Lock()
	f.calls = append(f.calls, c.Request.Method+" "+c.Request.URL.Path)
	f.mu.Unlock()
	c.Next()
}

func (f *FakeReservationAPI) requireToken(c *gin.Context) {
	f.mu.Lock()
	want := "Bearer " + f.token
	f.mu.Unlock()

	if c.GetHeader("Authorization") != want {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return
	}
	c.Next()
}

func (f *FakeReservationAPI) login(c *gin.Context) {
	var req struct {
		Username string `json:"Username"`
		Password string `json:"Password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	account := builder.NewAuthBuilder()
	if req.Username != account.Username || req.Password != account.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"token": f.token})
}

func (f *FakeReservationAPI) availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha requerida"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	c.JSON(http.StatusOK, reservation.Availability{
		Available: f.available(date),
		Capacity:  f.capacity,
	})
}

func (f *FakeReservationAPI) create(c *gin.Context) {
	var p reservation.Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.available(p.Fecha) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Sin cupos"})
		return
	}

	id := strconv.Itoa(f.nextID)
	f.nextID++
	f.reservations = append(f.reservations, map[string]any{
		"Id":        id,
		"Nombre":    p.Nombre,
		"Telefono":  p.Telefono,
		"Direccion": p.Direccion,
		"Provincia": p.Provincia,
		"Fecha":     p.Fecha,
		"Hora":      p.Hora,
		"Problema":  p.Problema,
		"Costo":     0,
		"Estado":    reservation.StatusPending.String(),
	})
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (f *FakeReservationAPI) list(c *gin.Context) {
	date := c.Query("date")

	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.reservations))
	for _, r := range f.reservations {
		if date == "" || r["Fecha"] == date {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (f *FakeReservationAPI) updateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"Status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Estado requerido"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexOf(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
		return
	}
	f.reservations[i]["Estado"] = req.Status
	c.Status(http.StatusNoContent)
}

func (f *FakeReservationAPI) remove(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexOf(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
		return
	}
	f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
	c.Status(http.StatusNoContent)
}

// callers hold f.mu
func (f *FakeReservationAPI) available(date string) int {
	booked := 0
	for _, r := range f.reservations {
		if r["Fecha"] == date {
			booked++
		}
	}
	return max(f.capacity-booked, 0)
}

// callers hold f.mu
func (f *FakeReservationAPI) indexOf(id string) int {
	for i, r := range f.reservations {
		if r["Id"] == id {
			return i
		}
	}
	return -1
}
