package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/models"
)

// DefaultShopURL is the hosted lowest-price search endpoint.
const DefaultShopURL = "https://openapi.naver.com/v1/search/shop.json"

// priceDisplay caps how many listings are compared per keyword.
const priceDisplay = 3

// priceCacheTTL keeps looked-up ingredient prices for a week; grocery
// listing prices drift slowly relative to catalog churn.
const priceCacheTTL = 7 * 24 * time.Hour

// PriceService estimates ingredient and recipe costs from a hosted
// shopping search. Every failure path yields a zero price rather than
// an error: a missing price never blocks a recommendation.
type PriceService struct {
	db       *gorm.DB
	redis    *redis.Client
	http     *http.Client
	shopURL  string
	clientID string
	secret   string
}

// NewPriceService creates a new PriceService instance. An empty shopURL
// selects DefaultShopURL; redisClient may be nil to disable caching.
func NewPriceService(db *gorm.DB, redisClient *redis.Client, shopURL, clientID, secret string) *PriceService {
	if shopURL == "" {
		shopURL = DefaultShopURL
	}
	return &PriceService{
		db:       db,
		redis:    redisClient,
		http:     &http.Client{Timeout: 10 * time.Second},
		shopURL:  shopURL,
		clientID: clientID,
		secret:   secret,
	}
}

type shopResponse struct {
	Items []struct {
		LPrice string `json:"lprice"`
	} `json:"items"`
}

// LowestPrice returns the lowest listed price for a keyword among the
// top search results, or zero on any failure or empty result.
func (s *PriceService) LowestPrice(ctx context.Context, keyword string) int {
	if s.clientID == "" || s.secret == "" {
		return 0
	}

	if cached, ok := s.cachedPrice(ctx, keyword); ok {
		return cached
	}

	price := s.fetchLowestPrice(ctx, keyword)
	s.storePrice(ctx, keyword, price)
	return price
}

func (s *PriceService) fetchLowestPrice(ctx context.Context, keyword string) int {
	query := url.Values{}
	query.Set("query", keyword)
	query.Set("display", strconv.Itoa(priceDisplay))
	query.Set("sort", "sim")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.shopURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0
	}
	req.Header.Set("X-Naver-Client-Id", s.clientID)
	req.Header.Set("X-Naver-Client-Secret", s.secret)

	resp, err := s.http.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0
	}

	var body shopResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0
	}

	lowest := 0
	for _, item := range body.Items {
		price, err := strconv.Atoi(item.LPrice)
		if err != nil || price <= 0 {
			continue
		}
		if lowest == 0 || price < lowest {
			lowest = price
		}
	}
	return lowest
}

// EstimateRecipePrice sums the lowest price of each distinct ingredient
// name. Unparsable ingredient data estimates to zero.
func (s *PriceService) EstimateRecipePrice(ctx context.Context, recipe *models.Recipe) int {
	names := recipe.IngredientNames()
	total := 0
	for _, name := range names {
		total += s.LowestPrice(ctx, name)
	}
	return total
}

// UpdateMissingPrices estimates and persists a cost for every catalog
// row that has none yet, returning how many rows were updated. Each row
// is written as soon as it is priced so an interrupted run resumes
// where it stopped.
func (s *PriceService) UpdateMissingPrices(ctx context.Context) (int, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("estimated_price = ?", 0).
		Order(`"RCP_SNO"`).
		Find(&recipes).Error; err != nil {
		return 0, fmt.Errorf("failed to load unpriced recipes: %w", err)
	}

	updated := 0
	for i := range recipes {
		if err := ctx.Err(); err != nil {
			return updated, err
		}

		price := s.EstimateRecipePrice(ctx, &recipes[i])
		if price == 0 {
			continue
		}

		if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
			Where(`"RCP_SNO" = ?`, recipes[i].RecipeSNO).
			Update("estimated_price", price).Error; err != nil {
			return updated, fmt.Errorf("failed to store price for recipe %d: %w", recipes[i].RecipeSNO, err)
		}
		updated++
	}
	return updated, nil
}

func (s *PriceService) cachedPrice(ctx context.Context, keyword string) (int, bool) {
	if s.redis == nil {
		return 0, false
	}
	price, err := s.redis.Get(ctx, priceCacheKey(keyword)).Int()
	if err != nil {
		return 0, false
	}
	return price, true
}

func (s *PriceService) storePrice(ctx context.Context, keyword string, price int) {
	if s.redis == nil {
		return
	}
	s.redis.Set(ctx, priceCacheKey(keyword), price, priceCacheTTL)
}

func priceCacheKey(keyword string) string {
	return "price:ingredient:" + keyword
}
