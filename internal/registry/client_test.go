package registry_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/fetcher"
	"github.com/quantmind-br/cargo-navigate/internal/registry"
	"github.com/quantmind-br/cargo-navigate/tests/mocks"
	"github.com/quantmind-br/cargo-navigate/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const serdeBody = `{
	"crate": {
		"id": "serde",
		"name": "serde",
		"homepage": "https://serde.rs",
		"repository": "https://github.com/serde-rs/serde",
		"documentation": null,
		"max_version": "1.0.210",
		"downloads": 123456789
	},
	"versions": [],
	"keywords": []
}`

func TestNewClient_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := registry.NewClient(mocks.NewMockFetcher(ctrl), registry.Options{})

	assert.Equal(t, "https://crates.io/api/v1/crates/serde", client.EndpointFor("serde"))
}

func TestClient_EndpointFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := registry.NewClient(mocks.NewMockFetcher(ctrl), registry.Options{APIURL: "https://mirror.example/api/v1/"})

	assert.Equal(t, "https://mirror.example/api/v1/crates/serde", client.EndpointFor("serde"))
	// names are passed through without escaping
	assert.Equal(t, "https://mirror.example/api/v1/crates/a b/../c", client.EndpointFor("a b/../c"))
}

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name    string
		resp    *domain.Response
		err     error
		wantErr error
		check   func(t *testing.T, rec *registry.Record, err error)
	}{
		{
			name: "crate found",
			resp: &domain.Response{StatusCode: 200, Body: []byte(serdeBody)},
			check: func(t *testing.T, rec *registry.Record, err error) {
				require.NoError(t, err)
				assert.Equal(t, "serde", rec.Crate.Name)

				home, ok := rec.Field(domain.KindHomepage)
				assert.True(t, ok)
				assert.Equal(t, "https://serde.rs", home)

				_, ok = rec.Field(domain.KindDocumentation)
				assert.False(t, ok)
			},
		},
		{
			name:    "transport failure",
			err:     domain.NewFetchError("https://crates.io/api/v1/crates/serde", 0, errors.New("connection refused")),
			wantErr: domain.ErrNetwork,
			check: func(t *testing.T, _ *registry.Record, err error) {
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
		{
			name:    "not found",
			resp:    &domain.Response{StatusCode: 404, Body: []byte(`{"errors":[{"detail":"Not Found"}]}`)},
			wantErr: domain.ErrCrateNotFound,
			check: func(t *testing.T, _ *registry.Record, err error) {
				assert.EqualError(t, err, "Crate serde is not found in the registry")
			},
		},
		{
			name:    "server error",
			resp:    &domain.Response{StatusCode: 503, Body: []byte(`<html>maintenance</html>`)},
			wantErr: domain.ErrNetwork,
			check: func(t *testing.T, _ *registry.Record, err error) {
				var fetchErr *domain.FetchError
				require.ErrorAs(t, err, &fetchErr)
				assert.Equal(t, 503, fetchErr.StatusCode)
			},
		},
		{
			name:    "body is not JSON",
			resp:    &domain.Response{StatusCode: 200, Body: []byte(`<html></html>`)},
			wantErr: domain.ErrResponseInvalid,
		},
		{
			name:    "wrong field type",
			resp:    &domain.Response{StatusCode: 200, Body: []byte(`{"crate":{"name":"serde","homepage":42}}`)},
			wantErr: domain.ErrResponseInvalid,
		},
		{
			name:    "no crate object",
			resp:    &domain.Response{StatusCode: 200, Body: []byte(`{"errors":[{"detail":"crate is yanked"}]}`)},
			wantErr: domain.ErrResponseInvalid,
			check: func(t *testing.T, _ *registry.Record, err error) {
				assert.EqualError(t, err, "Invalid registry response for crate serde: crate is yanked")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := mocks.NewMockFetcher(ctrl)
			f.EXPECT().
				Get(gomock.Any(), "https://crates.io/api/v1/crates/serde").
				Return(tt.resp, tt.err).
				Times(1)

			client := registry.NewClient(f, registry.Options{Logger: testutil.NewTestLogger(t)})
			rec, err := client.Lookup(context.Background(), "serde")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rec)
			}
			if tt.check != nil {
				tt.check(t, rec, err)
			}
		})
	}
}

func TestClient_Lookup_OverHTTP(t *testing.T) {
	srv := testutil.NewRegistryServer(t)
	srv.AddCrate("serde", serdeBody)

	f, err := fetcher.NewClient(fetcher.DefaultClientOptions())
	require.NoError(t, err)
	defer f.Close()

	client := registry.NewClient(f, registry.Options{APIURL: srv.APIURL()})

	t.Run("found", func(t *testing.T) {
		rec, err := client.Lookup(context.Background(), "serde")
		require.NoError(t, err)

		repo, ok := rec.Field(domain.KindRepository)
		assert.True(t, ok)
		assert.Equal(t, "https://github.com/serde-rs/serde", repo)
	})

	t.Run("missing crate", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrCrateNotFound)
	})

	t.Run("rate limited", func(t *testing.T) {
		srv.Reply("busy", http.StatusTooManyRequests, `{"errors":[{"detail":"slow down"}]}`)

		_, err := client.Lookup(context.Background(), "busy")
		assert.ErrorIs(t, err, domain.ErrNetwork)
	})

	assert.Equal(t, []string{"serde", "does-not-exist", "busy"}, srv.Hits())
}

func TestClient_Lookup_LogsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mocks.NewMockFetcher(ctrl)
	f.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&domain.Response{
		StatusCode:  200,
		Body:        []byte(serdeBody),
		ContentType: "application/json; charset=utf-8",
	}, nil)

	logger, buf := testutil.NewCapturingLogger(t)
	client := registry.NewClient(f, registry.Options{Logger: logger})

	_, err := client.Lookup(context.Background(), "serde")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"component":"registry"`)
	assert.Contains(t, buf.String(), `"crate":"serde"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"content_type":"application/json; charset=utf-8"`)
}
