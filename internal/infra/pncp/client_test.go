package pncp

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"editais/config"
	"editais/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{PNCP: &config.PNCPConfig{
		BaseURL:  server.URL,
		PageSize: 20,
		Timeout:  5 * time.Second,
	}}

	return NewClient(cfg, slog.New(slog.DiscardHandler))
}

func TestFetchTenders_SendsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"numeroControlePNCP":"n","anoCompra":2025,"sequencialCompra":1,"ufSigla":"SP","modalidadeNome":"Pregão Eletrônico","dataPublicacaoPncp":"2025-08-28","objetoCompra":"Aquisição de equipamentos"}]}`))
	})

	tenders, err := client.FetchTenders(context.Background(), service.FetchQuery{
		StartDate: time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
		UF:        "SP",
		Keywords:  "equipamentos",
	})
	require.NoError(t, err)
	require.Len(t, tenders, 1)

	assert.Equal(t, []string{"1"}, gotQuery["pagina"])
	assert.Equal(t, []string{"20"}, gotQuery["tamanhoPagina"])
	assert.Equal(t, []string{"2025-08-28"}, gotQuery["dataInicial"])
	assert.Equal(t, []string{"2025-08-29"}, gotQuery["dataFinal"])
	assert.Equal(t, []string{"SP"}, gotQuery["uf"])
	assert.Equal(t, []string{"equipamentos"}, gotQuery["palavraChave"])

	assert.Equal(t, "2025-1-n", tenders[0].ID)
	assert.Equal(t, "SP", tenders[0].UF)
}

func TestFetchTenders_EmptyPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	tenders, err := client.FetchTenders(context.Background(), service.FetchQuery{})
	require.NoError(t, err)
	assert.Empty(t, tenders)
}

func TestFetchTenders_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchTenders(context.Background(), service.FetchQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchTenders_SharedFetchedAt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"numeroControlePNCP":"a","anoCompra":2025,"sequencialCompra":1,"objetoCompra":"Obra A"},
			{"numeroControlePNCP":"b","anoCompra":2025,"sequencialCompra":2,"objetoCompra":"Obra B"}
		]}`))
	})
	fixed := time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	tenders, err := client.FetchTenders(context.Background(), service.FetchQuery{})
	require.NoError(t, err)
	require.Len(t, tenders, 2)
	assert.Equal(t, fixed, tenders[0].FetchedAt)
	assert.Equal(t, fixed, tenders[1].FetchedAt)
}
