package memcache_fx

import (
	"go.uber.org/fx"
	mem "huakai/pkg/memcache"
)

var Module = fx.Provide(provideSearchBundleStore)

func provideSearchBundleStore() mem.SearchBundleStore {
	return mem.NewSearchBundles()
}
