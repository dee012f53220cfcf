// Package pncp implements the TenderSource interface against the public
// PNCP procurement portal API.
package pncp

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"editais/config"
	"editais/internal/domain/entity"
	"editais/internal/domain/service"
	"editais/internal/errors"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL  = "https://pncp.gov.br/api/pncp/v1/consulta/contratacoes/publicacao"
	defaultPageSize = 20
	defaultTimeout  = 30 * time.Second

	dateLayout = "2006-01-02"
)

// record mirrors one contract entry of the PNCP listing response.
type record struct {
	NumeroControlePNCP string `json:"numeroControlePNCP"`
	AnoCompra          int    `json:"anoCompra"`
	SequencialCompra   int    `json:"sequencialCompra"`
	OrgaoEntidade      struct {
		RazaoSocial string `json:"razaoSocial"`
	} `json:"orgaoEntidade"`
	UFSigla            string   `json:"ufSigla"`
	ModalidadeNome     string   `json:"modalidadeNome"`
	DataPublicacaoPncp string   `json:"dataPublicacaoPncp"`
	ValorEstimadoTotal *float64 `json:"valorEstimadoTotal"`
	ObjetoCompra       string   `json:"objetoCompra"`
	LinkSistemaOrigem  string   `json:"linkSistemaOrigem"`
}

// page is the envelope the PNCP listing endpoint wraps results in.
type page struct {
	Data []record `json:"data"`
}

// Client fetches published tenders from the PNCP API.
type Client struct {
	client   *resty.Client
	pageSize int
	logger   *slog.Logger
	now      func() time.Time
}

var _ service.TenderSource = (*Client)(nil)

// NewClient builds a PNCP client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	baseURL := defaultBaseURL
	pageSize := defaultPageSize
	timeout := defaultTimeout
	if cfg.PNCP != nil {
		if cfg.PNCP.BaseURL != "" {
			baseURL = cfg.PNCP.BaseURL
		}
		if cfg.PNCP.PageSize > 0 {
			pageSize = cfg.PNCP.PageSize
		}
		if cfg.PNCP.Timeout > 0 {
			timeout = cfg.PNCP.Timeout
		}
	}

	restyClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(1).
		SetHeader("Accept", "application/json")

	return &Client{
		client:   restyClient,
		pageSize: pageSize,
		logger:   logger,
		now:      time.Now,
	}
}

// FetchTenders queries the PNCP listing endpoint for the given window and
// returns the normalized tenders.
func (c *Client) FetchTenders(ctx context.Context, query service.FetchQuery) ([]*entity.Tender, error) {
	params := map[string]string{
		"pagina":        "1",
		"tamanhoPagina": strconv.Itoa(c.pageSize),
	}
	if !query.StartDate.IsZero() {
		params["dataInicial"] = query.StartDate.Format(dateLayout)
	}
	if !query.EndDate.IsZero() {
		params["dataFinal"] = query.EndDate.Format(dateLayout)
	}
	if query.UF != "" {
		params["uf"] = query.UF
	}
	if query.Keywords != "" {
		params["palavraChave"] = query.Keywords
	}
	if query.Status != "" {
		params["status"] = query.Status
	}

	var result page
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("")
	if err != nil {
		return nil, errors.Wrap(err, "pncp request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("pncp request failed with status %d", resp.StatusCode())
	}

	fetchedAt := c.now()
	tenders := make([]*entity.Tender, 0, len(result.Data))
	for i := range result.Data {
		tenders = append(tenders, normalize(&result.Data[i], fetchedAt))
	}

	c.logger.DebugContext(ctx, "pncp fetch completed",
		slog.Int("count", len(tenders)),
		slog.String("dataInicial", params["dataInicial"]),
		slog.String("dataFinal", params["dataFinal"]))

	return tenders, nil
}
