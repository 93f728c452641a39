package backend_api_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saas-dashboard/internal/contextkeys"
	"saas-dashboard/internal/contracts"
	"saas-dashboard/internal/core/domain"
)

const companiesJSON = `{
	"items": [
		{"id": 1, "name": "Acme", "industry": "Fintech", "location": "Austin, USA", "products": "Payments",
		 "founding_year": 2015, "total_funding": 1500000, "arr": null, "valuation": 2000000000}
	],
	"total": 41, "page": 2, "size": 20, "total_pages": 3
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	registry, err := contracts.DefaultRegistry()
	require.NoError(t, err)

	return NewClient(Config{
		BaseURL:   srv.URL,
		Validator: registry,
		Contracts: Contracts{
			Companies:  contracts.CompaniesPage,
			Industries: contracts.Industries,
			Locations:  contracts.Locations,
			Health:     contracts.Health,
		},
	})
}

func intPtr(v int) *int { return &v }

func TestFetchCompanies_DecodesAndMaps(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/companies", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(companiesJSON))
	})

	page, err := client.FetchCompanies(context.Background(), domain.CompanyQuery{
		IndustryID: intPtr(3),
		Page:       intPtr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, "industry_id=3&page=2", gotQuery)
	assert.Equal(t, 41, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.Size)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 1)

	company := page.Items[0]
	assert.Equal(t, "Acme", company.Name)
	require.NotNil(t, company.FoundingYear)
	assert.Equal(t, 2015, *company.FoundingYear)
	require.NotNil(t, company.TotalFunding)
	assert.Equal(t, 1500000.0, *company.TotalFunding)
	assert.Nil(t, company.ARR, "null must stay absent, not zero")
}

func TestFetchCompanies_OmitsUnsetParams(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"items":[],"total":0,"page":1,"size":20,"total_pages":0}`))
	})

	_, err := client.FetchCompanies(context.Background(), domain.CompanyQuery{})
	require.NoError(t, err)

	assert.Empty(t, gotQuery)
	for _, literal := range []string{"null", "undefined", "nil"} {
		assert.NotContains(t, gotQuery, literal)
	}
}

func TestEncodeCompanyQuery(t *testing.T) {
	assert.Equal(t, "", encodeCompanyQuery(domain.CompanyQuery{}))
	assert.Equal(t, "industry_id=1&location_id=2&page=3&size=50", encodeCompanyQuery(domain.CompanyQuery{
		IndustryID: intPtr(1), LocationID: intPtr(2), Page: intPtr(3), Size: intPtr(50),
	}))
	assert.Equal(t, "location_id=7", encodeCompanyQuery(domain.CompanyQuery{LocationID: intPtr(7)}))
}

func TestFetch_HTTPErrorCarriesStatusAndResourcePrefix(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchIndustries(context.Background())
	require.Error(t, err)

	assert.True(t, strings.HasPrefix(err.Error(), "failed to fetch industries: "), err.Error())
	assert.Contains(t, err.Error(), "HTTP error! status: 500")
	assert.True(t, domain.IsHTTP(err))
	assert.Equal(t, http.StatusInternalServerError, domain.StatusCode(err))
}

func TestFetch_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchLocations(context.Background())
	require.Error(t, err)

	assert.Equal(t, "failed to fetch locations: HTTP error! status: 404", err.Error())
	assert.Equal(t, domain.KindHTTP, domain.KindOf(err))
}

func TestFetch_MalformedJSONIsTransportError(t *testing.T) {
	// без валидатора, чтобы ошибка пришла именно из декодера
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "healthy",`))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.FetchHealth(context.Background())
	require.Error(t, err)

	assert.True(t, strings.HasPrefix(err.Error(), "failed to fetch health status: "))
	assert.True(t, domain.IsTransport(err))
	assert.Equal(t, 0, domain.StatusCode(err))
}

func TestFetch_ContractViolationIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"degraded","version":"1","environment":"dev","timestamp":"now"}`))
	})

	_, err := client.FetchHealth(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
}

func TestFetch_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: baseURL})

	_, err := client.FetchCompanies(context.Background(), domain.CompanyQuery{})
	require.Error(t, err)

	assert.True(t, strings.HasPrefix(err.Error(), "failed to fetch companies: "))
	assert.True(t, domain.IsTransport(err))
}

func TestFetch_SingleAttemptNoRetry(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchIndustries(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetch_PropagatesTraceID(t *testing.T) {
	var gotTrace string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get("X-Trace-ID")
		w.Write([]byte(`[{"id":1,"name":"Fintech"}]`))
	})

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	industries, err := client.FetchIndustries(ctx)
	require.NoError(t, err)

	assert.Equal(t, "trace-123", gotTrace)
	assert.Equal(t, []domain.Industry{{ID: 1, Name: "Fintech"}}, industries)
}

func TestFetchLocations_NullableState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"city":"Austin","state":"TX","country":"USA"},{"id":2,"city":"Berlin","state":null,"country":"Germany"}]`))
	})

	locations, err := client.FetchLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)

	require.NotNil(t, locations[0].State)
	assert.Equal(t, "TX", *locations[0].State)
	assert.Nil(t, locations[1].State)
	assert.Equal(t, "Berlin, Germany", locations[1].Label())
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	client = NewClient(Config{BaseURL: "http://backend:8000/"})
	assert.Equal(t, "http://backend:8000", client.baseURL)
}
