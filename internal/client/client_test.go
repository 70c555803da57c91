package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-chambers/prolix/internal/models"
)

func newDictionaryServer(t *testing.T, handler http.HandlerFunc) *DictionaryAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &DictionaryAPI{baseURL: srv.URL, client: srv.Client()}
}

func newDatamuseServer(t *testing.T, handler http.HandlerFunc) *DatamuseAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &DatamuseAPI{baseURL: srv.URL, client: srv.Client()}
}

func TestDictionaryAPI_Define(t *testing.T) {
	t.Parallel()

	api := newDictionaryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bat", r.URL.Path)
		w.Write([]byte(`[
			{"word": "bat", "meanings": [
				{"partOfSpeech": "noun", "definitions": [
					{"definition": "a flying mammal"},
					{"definition": "a club used in sports"}
				]},
				{"partOfSpeech": "verb", "definitions": [
					{"definition": "to strike with a bat"}
				]}
			]}
		]`))
	})

	def, err := api.Define(context.Background(), "bat")
	require.NoError(t, err)
	assert.Equal(t, models.Definition{
		"noun": {"a flying mammal", "a club used in sports"},
		"verb": {"to strike with a bat"},
	}, def)
}

func TestDictionaryAPI_Define_NotFound(t *testing.T) {
	t.Parallel()

	api := newDictionaryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := api.Define(context.Background(), "xyzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dictionary entry")
}

func TestDictionaryAPI_Define_BadPayload(t *testing.T) {
	t.Parallel()

	api := newDictionaryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := api.Define(context.Background(), "bat")
	require.Error(t, err)
}

func TestDatamuseAPI_Suggest(t *testing.T) {
	t.Parallel()

	api := newDatamuseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "doggo", r.URL.Query().Get("s"))
		w.Write([]byte(`[{"word": "dog", "score": 900}]`))
	})

	got, err := api.Suggest(context.Background(), "doggo")
	require.NoError(t, err)
	assert.Equal(t, "dog", got)
}

func TestDatamuseAPI_Suggest_NoSuggestion(t *testing.T) {
	t.Parallel()

	api := newDatamuseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	got, err := api.Suggest(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", got)
}

func TestDatamuseAPI_Suggest_ServerError(t *testing.T) {
	t.Parallel()

	api := newDatamuseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := api.Suggest(context.Background(), "cat")
	require.Error(t, err)
}
