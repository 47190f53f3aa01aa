package usecase

import (
	"strings"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/metrics"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/asset"
)

type SourceCfg struct {
	// Gateways overrides the default mirror list when set
	Gateways []string
	Reader   asset.Reader
}

type sourceImpl struct {
	gateways []string
	reader   asset.Reader
	met      metrics.Service
}

func NewSource(cfg *SourceCfg) asset.Source {
	gateways := cfg.Gateways
	if len(gateways) == 0 {
		gateways = asset.DefaultGateways
	}
	return &sourceImpl{
		gateways: gateways,
		reader:   cfg.Reader,
		met:      metrics.New("asset"),
	}
}

// CandidateGateways builds one fetchable url per mirror, preserving mirror
// order. The content ref may carry an ipfs scheme prefix which is stripped.
func (s *sourceImpl) CandidateGateways(contentRef string) []string {
	ref := strings.TrimPrefix(contentRef, "ipfs://")
	ref = strings.TrimPrefix(ref, "ipfs/")
	urls := make([]string, len(s.gateways))
	for i, g := range s.gateways {
		urls[i] = g + ref
	}
	return urls
}

func (s *sourceImpl) Fetch(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return nil, domain.ErrUnsupportedSchema
	}
	defer s.met.BumpTime("fetch.latency").End()
	data, err := s.reader.Get(c, url)
	if err != nil {
		s.met.BumpSum("fetch.err", 1)
		return nil, err
	}
	return data, nil
}
