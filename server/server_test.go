package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, s *Server, target string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &data), string(body))
	return resp.StatusCode, data
}

func TestNote(t *testing.T) {
	assert := assert.New(t)
	status, data := get(t, New(nil), "/notes/Db")
	assert.Equal(http.StatusOK, status)
	assert.Equal(map[string]interface{}{
		"note":       "Db",
		"name":       "D",
		"accidental": "b",
		"pitch":      4.0,
		"enharmonic": "C#",
	}, data)

	status, data = get(t, New(nil), "/notes/C%23")
	assert.Equal(http.StatusOK, status)
	assert.Equal("Db", data["enharmonic"])
}

func TestNoteUnrecognized(t *testing.T) {
	assert := assert.New(t)
	status, data := get(t, New(nil), "/notes/H")
	assert.Equal(http.StatusBadRequest, status)
	assert.Equal(`unrecognized note "H"`, data["detail"])
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)
	s := New(nil)

	status, data := get(t, s, "/intervals/C/4?direction=down")
	assert.Equal(http.StatusOK, status)
	assert.Equal("C down a Major 3", data["label"])
	assert.Equal([]interface{}{"C", "G#"}, data["notes"])

	status, data = get(t, s, "/intervals/Bb/7")
	assert.Equal(http.StatusOK, status)
	assert.Equal("Bb up a Perfect 5", data["label"])

	status, _ = get(t, s, "/intervals/C/x")
	assert.Equal(http.StatusBadRequest, status)
	status, _ = get(t, s, "/intervals/C/4?direction=sideways")
	assert.Equal(http.StatusBadRequest, status)
	status, data = get(t, s, "/intervals/C/18")
	assert.Equal(http.StatusNotFound, status)
	assert.Equal(`unknown interval "18"`, data["detail"])
}

func TestChord(t *testing.T) {
	assert := assert.New(t)
	s := New(nil)

	status, data := get(t, s, "/chords/C%23/Min")
	assert.Equal(http.StatusOK, status)
	assert.Equal("C# Min", data["label"])
	assert.Equal([]interface{}{"C#", "E", "G#"}, data["notes"])

	status, data = get(t, s, "/chords/C/Blues")
	assert.Equal(http.StatusNotFound, status)
	assert.Equal(`unknown chord quality "Blues"`, data["detail"])

	status, _ = get(t, s, "/chords/X/Maj")
	assert.Equal(http.StatusBadRequest, status)
}

func TestScale(t *testing.T) {
	assert := assert.New(t)
	s := New(nil)

	status, data := get(t, s, "/scales/D/Major?mode=Dorian")
	assert.Equal(http.StatusOK, status)
	assert.Equal("D Dorian", data["label"])
	assert.Equal([]interface{}{"D", "E", "F", "G", "A", "B", "C"}, data["notes"])

	status, data = get(t, s, "/scales/C/harmonic-minor")
	assert.Equal(http.StatusOK, status)
	assert.Equal("C Harmonic Minor", data["label"])

	status, _ = get(t, s, "/scales/C/Major?mode=Hypodorian")
	assert.Equal(http.StatusNotFound, status)
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)
	status, data := get(t, New(nil), "/catalog")
	assert.Equal(http.StatusOK, status)
	assert.Len(data["notes"], 17)
	assert.Len(data["chords"], 16)
	assert.Len(data["modes"], 7)
}

func TestUnknownRoute(t *testing.T) {
	assert := assert.New(t)
	status, data := get(t, New(nil), "/rhythms")
	assert.Equal(http.StatusNotFound, status)
	assert.Equal("no route for /rhythms", data["detail"])
}

func TestCORS(t *testing.T) {
	assert := assert.New(t)
	s := New([]string{"http://example.com"})

	req := httptest.NewRequest(http.MethodGet, "/notes/C", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal("http://example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/notes/C", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Empty(w.Header().Get("Access-Control-Allow-Origin"))
}
