package repository

import (
	"io/ioutil"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain/asset"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeApiReaderRepo reads content through a local ipfs node instead of
// a public gateway, selected by config for self-hosted deployments.
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) asset.Reader {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, url string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", cidPath(url)).Send(ctx)
	if err != nil {
		c.WithField("err", err).Error("shell.Request failed")
		return nil, err
	}
	if resp.Error != nil {
		c.WithField("resp.Error", resp.Error).Error("shell.Request failed")
		return nil, resp.Error
	}
	return ioutil.ReadAll(resp.Output)
}

// cidPath strips a gateway url down to the cid path the node api expects
func cidPath(url string) string {
	if i := strings.Index(url, "/ipfs/"); i >= 0 {
		return url[i+len("/ipfs/"):]
	}
	return url
}
