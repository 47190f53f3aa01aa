package asset

import (
	"github.com/walletsandbox/walletapi/base/ctx"
)

// DefaultGateways are the public ipfs mirrors asset urls are built from,
// in preference order. Only the first is used for preloading, the rest
// exist for clients that want to fail over manually.
var DefaultGateways = []string{
	"https://ipfs.cf-ipfs.com/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://cf-ipfs.com/ipfs/",
	"https://ipfs.infura.io/ipfs/",
	"https://infura-ipfs.io/ipfs/",
	"https://crustwebsites.net/ipfs/",
	"https://ipfs.fleek.co/ipfs/",
	"https://dweb.link/ipfs/",
}

// Reader performs a single fetch attempt for a content identifier or url
type Reader interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

// Source resolves content-addressed locators to gateway urls and fetches them
type Source interface {
	// CandidateGateways returns the ordered mirror url prefixes for a content ref
	CandidateGateways(contentRef string) []string
	// Fetch performs one fetch attempt against the given url
	Fetch(ctx.Ctx, string) ([]byte, error)
}
