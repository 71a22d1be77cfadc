package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/upload", r.URL.Path)

			file, header, err := r.FormFile("image")
			require.NoError(t, err)
			defer file.Close()

			assert.Equal(t, "truck.jpg", header.Filename)
			data, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, []byte("jpeg-bytes"), data)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"url":"https://img.example.com/truck.jpg"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		url, err := client.Upload(context.Background(), "truck.jpg", []byte("jpeg-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/truck.jpg", url)
	})

	t.Run("host error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "disk full", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.Upload(context.Background(), "truck.jpg", []byte("jpeg-bytes"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("empty url in response", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.Upload(context.Background(), "truck.jpg", []byte("jpeg-bytes"))
		require.Error(t, err)
	})
}
