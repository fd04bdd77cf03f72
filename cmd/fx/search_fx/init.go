package search_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"huakai/cmd/fx/llm_fx"
	"huakai/internal/infra"
	"huakai/internal/services"
	"huakai/pkg/llm"
	mem "huakai/pkg/memcache"
)

var Module = fx.Provide(
	ProvideSearchClient,
	ProvideSearchGatherService,
)

func ProvideSearchClient(logger *zap.Logger) infra.SearchClient {
	apiKey := os.Getenv("SERPAPI_API_KEY")
	if apiKey == "" {
		log.Println("SERPAPI_API_KEY not set, supplemental search will return empty results")
	}
	return infra.NewSerpAPIClient(apiKey, logger)
}

func ProvideSearchGatherService(
	chat llm.ChatClient,
	models llm_fx.Models,
	search infra.SearchClient,
	store mem.SearchBundleStore,
	logger *zap.Logger,
) services.SearchGatherServiceInterface {
	fanout := 3
	if v := os.Getenv("SEARCH_FANOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			fanout = n
		}
	}
	return services.NewSearchGatherService(chat, models.Itinerary, search, store, fanout, logger)
}
