package driverprov_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistance/internal/adapters/out/driverprov"
	"assistance/internal/core/domain/model/kernel"
)

func Test_NewClient_EmptyBaseURL_ReturnsError(t *testing.T) {
	client, err := driverprov.NewClient("")

	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseURL")
}

func Test_Client_GetDriver_Success(t *testing.T) {
	driverID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/driver/"+driverID.String(), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          driverID.String(),
			"name":        "Marta",
			"isAvailable": true,
		})
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	driver, err := client.GetDriver(context.Background(), driverID)
	require.NoError(t, err)
	assert.True(t, driverID.IsEqual(driver.ID))
	assert.Equal(t, "Marta", driver.Name)
	assert.True(t, driver.IsAvailable)
}

func Test_Client_GetDriver_NotFoundStatus_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetDriver(context.Background(), kernel.NewUUID())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func Test_Client_GetDriver_MalformedBody_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetDriver(context.Background(), kernel.NewUUID())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode provider response")
}

func Test_Client_GetAvailableDrivers_Success(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/provider/availables", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": first.String(), "name": "Marta", "isAvailable": true},
			{"id": second.String(), "name": "Luis", "isAvailable": true},
		})
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	drivers, err := client.GetAvailableDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.True(t, first.IsEqual(drivers[0].ID))
	assert.True(t, second.IsEqual(drivers[1].ID))
}

func Test_Client_GetAvailableDrivers_EmptyRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	drivers, err := client.GetAvailableDrivers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drivers)
}

func Test_Client_SetAvailability_SendsPatchWithFlag(t *testing.T) {
	driverID := kernel.NewUUID()

	var gotBody map[string]bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/driver/"+driverID.String(), r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	err = client.SetAvailability(context.Background(), driverID, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"isAvailable": false}, gotBody)
}

func Test_Client_SetAvailability_ServerError_Surfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := driverprov.NewClient(server.URL)
	require.NoError(t, err)

	err = client.SetAvailability(context.Background(), kernel.NewUUID(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
