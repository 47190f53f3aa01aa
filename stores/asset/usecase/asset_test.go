package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/asset"
)

func Test_sourceImpl_CandidateGateways(t *testing.T) {
	tests := []struct {
		name       string
		gateways   []string
		contentRef string
		want       []string
	}{
		{
			name:       "bare cid",
			gateways:   []string{"https://a.example/ipfs/", "https://b.example/ipfs/"},
			contentRef: "QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			want: []string{
				"https://a.example/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
				"https://b.example/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			},
		},
		{
			name:       "ipfs scheme",
			gateways:   []string{"https://a.example/ipfs/"},
			contentRef: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			want:       []string{"https://a.example/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png"},
		},
		{
			name:       "ipfs path prefix",
			gateways:   []string{"https://a.example/ipfs/"},
			contentRef: "ipfs/QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
			want:       []string{"https://a.example/ipfs/QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSource(&SourceCfg{Gateways: tt.gateways})
			require.Equal(t, tt.want, s.CandidateGateways(tt.contentRef))
		})
	}
}

func Test_NewSource_defaultGateways(t *testing.T) {
	s := NewSource(&SourceCfg{})
	urls := s.CandidateGateways("QmTest")
	require.Len(t, urls, len(asset.DefaultGateways))
	require.Equal(t, asset.DefaultGateways[0]+"QmTest", urls[0])
}

type stubReader struct {
	data []byte
}

func (r *stubReader) Get(_ ctx.Ctx, _ string) ([]byte, error) {
	return r.data, nil
}

func Test_sourceImpl_Fetch(t *testing.T) {
	s := NewSource(&SourceCfg{
		Gateways: []string{"https://a.example/ipfs/"},
		Reader:   &stubReader{data: []byte("img")},
	})

	data, err := s.Fetch(ctx.Background(), "https://a.example/ipfs/QmTest")
	require.NoError(t, err)
	require.Equal(t, []byte("img"), data)

	_, err = s.Fetch(ctx.Background(), "ar://QmTest")
	require.ErrorIs(t, err, domain.ErrUnsupportedSchema)
}
