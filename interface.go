package ondilo

import (
	"context"

	"golang.org/x/oauth2"
)

// OndiloClient defines the interface for Ondilo API operations.
// Client implements this interface, enabling mocking for tests.
type OndiloClient interface {
	// Authorization flow
	AuthURL(state string) (string, error)
	RequestToken(ctx context.Context, authorizationResponse string) (*oauth2.Token, error)
	RefreshToken(ctx context.Context) (*oauth2.Token, error)
	Token() *oauth2.Token
	SetToken(ctx context.Context, token *oauth2.Token) error

	// Pool operations
	ListPools(ctx context.Context) ([]Pool, error)
	GetICODetails(ctx context.Context, poolID int) (*ICO, error)
	GetPoolConfiguration(ctx context.Context, poolID int) (*PoolConfiguration, error)
	GetPoolShares(ctx context.Context, poolID int) ([]Share, error)

	// Recommendation operations
	GetRecommendations(ctx context.Context, poolID int) ([]Recommendation, error)
	ValidateRecommendation(ctx context.Context, poolID, recommendationID int) error

	// Measure operations
	GetLastMeasures(ctx context.Context, poolID int, types ...MeasureType) ([]Measure, error)
	GetMeasureHistory(ctx context.Context, poolID int, measure MeasureType, period Period) ([]Measure, error)

	// User operations
	GetUserInfo(ctx context.Context) (*UserInfo, error)
	GetUserUnits(ctx context.Context) (*UserUnits, error)

	// Low-level access
	Request(ctx context.Context, method, path string, body any) ([]byte, error)
}

// Compile-time check that Client satisfies the interface.
var _ OndiloClient = (*Client)(nil)
