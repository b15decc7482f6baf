package handlers_test

import (
	"net/http"
	"testing"

	"github.com/garagem-inteligente/server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehicleJSON struct {
	ID    string `json:"id"`
	Plate string `json:"placa"`
	Owner struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"owner"`
	SharedWith []struct {
		Email string `json:"email"`
	} `json:"sharedWith"`
}

// TestSharingLifecycle walks the full owner/friend scenario: register two
// users, share a vehicle, let the friend read and write maintenance,
// deny the friend re-sharing, and verify the cascade on delete.
func TestSharingLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, ownerToken := testutil.NewUserBuilder().
		WithEmail("owner@test.com").WithPassword("secret1").
		BuildAndAuthenticate(t, ts)
	_, friendToken := testutil.NewUserBuilder().
		WithEmail("friend@test.com").WithPassword("secret2").
		BuildAndAuthenticate(t, ts)

	// Owner creates a vehicle.
	resp := testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos"), ownerToken, map[string]any{
		"placa":  "abc-1234",
		"marca":  "Fiat",
		"modelo": "Uno",
		"ano":    2019,
		"cor":    "Prata",
		"tipo":   "Carro",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created vehicleJSON
	testutil.AssertJSONResponse(t, resp, &created)
	resp.Body.Close()
	assert.Equal(t, "ABC-1234", created.Plate)
	assert.Equal(t, "owner@test.com", created.Owner.Email)

	// Friend sees nothing yet.
	resp = testutil.DoJSON(t, http.MethodGet, ts.APIURL("/veiculos"), friendToken, nil)
	var friendList []vehicleJSON
	testutil.AssertJSONResponse(t, resp, &friendList)
	resp.Body.Close()
	require.Empty(t, friendList)

	// Owner shares with the friend.
	resp = testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos/"+created.ID+"/share"), ownerToken,
		map[string]any{"email": "friend@test.com"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	// Friend now sees one vehicle, with the owner identified.
	resp = testutil.DoJSON(t, http.MethodGet, ts.APIURL("/veiculos"), friendToken, nil)
	testutil.AssertJSONResponse(t, resp, &friendList)
	resp.Body.Close()
	require.Len(t, friendList, 1)
	assert.Equal(t, "owner@test.com", friendList[0].Owner.Email)

	// Friend logs a maintenance record.
	resp = testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos/"+created.ID+"/manutencoes"), friendToken,
		map[string]any{"descricaoServico": "Teste do amigo", "custo": 50, "quilometragem": 100})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	resp.Body.Close()

	// Friend may not re-share.
	resp = testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos/"+created.ID+"/share"), friendToken,
		map[string]any{"email": "owner@test.com"})
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	resp.Body.Close()

	// Friend may not delete either.
	resp = testutil.DoJSON(t, http.MethodDelete, ts.APIURL("/veiculos/"+created.ID), friendToken, nil)
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	resp.Body.Close()

	// Owner deletes the vehicle.
	resp = testutil.DoJSON(t, http.MethodDelete, ts.APIURL("/veiculos/"+created.ID), ownerToken, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	// Friend's list is empty again.
	resp = testutil.DoJSON(t, http.MethodGet, ts.APIURL("/veiculos"), friendToken, nil)
	testutil.AssertJSONResponse(t, resp, &friendList)
	resp.Body.Close()
	assert.Empty(t, friendList)

	// And the maintenance history is gone with the vehicle.
	resp = testutil.DoJSON(t, http.MethodGet, ts.APIURL("/veiculos/"+created.ID+"/manutencoes"), friendToken, nil)
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	resp.Body.Close()
}

func TestVehicleEndpoints_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	valid := map[string]any{
		"placa":  "VAL-0001",
		"marca":  "VW",
		"modelo": "Gol",
		"ano":    2018,
		"tipo":   "Carro",
	}

	t.Run("create", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos"), token, valid)
		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		resp.Body.Close()
	})

	t.Run("duplicate plate is 409", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos"), token, valid)
		testutil.AssertErrorResponse(t, resp, http.StatusConflict, "placa")
		resp.Body.Close()
	})

	t.Run("invalid year is 400", func(t *testing.T) {
		bad := map[string]any{
			"placa":  "VAL-0002",
			"marca":  "VW",
			"modelo": "Gol",
			"ano":    1850,
			"tipo":   "Carro",
		}
		resp := testutil.DoJSON(t, http.MethodPost, ts.APIURL("/veiculos"), token, bad)
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})

	t.Run("unknown vehicle is 404", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/veiculos/00000000-0000-0000-0000-000000000000"), token, nil)
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
		resp.Body.Close()
	})
}
