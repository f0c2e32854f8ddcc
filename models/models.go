package models

// Role is the coarse authorization tier reported by the backend at
// login. It gates navigation and page access on this side only; the
// backend re-checks every protected request.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is one browser session: the backend token plus the role and
// display fields derived from the login response. Token == "" always
// implies RoleGuest; session.Store is the only writer.
type Session struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Role   Role   `json:"role"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

func (s *Session) CurrentRole() Role {
	if s == nil || s.Token == "" {
		return RoleGuest
	}
	return s.Role
}

// AttractionRef is the normalized form of an attraction record.
// CanonicalID is derived once at the normalize boundary and is the only
// identifier used for routing, itinerary membership and list keys. An
// empty CanonicalID means the record cannot be deep-linked.
type AttractionRef struct {
	CanonicalID   string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	EcoScore      int      `json:"eco_score"`
	Images        []string `json:"images"`
	Videos        []string `json:"videos"`
	AudioStoryURL string   `json:"audio_story_url"`
	Tags          []string `json:"tags"`
	BestSeason    string   `json:"best_season"`
	MapURL        string   `json:"map_url"`
	ARModelURL    string   `json:"ar_model_url"`
}

// FestivalRef is the normalized form of a festival record.
type FestivalRef struct {
	CanonicalID string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ItineraryEntry mirrors one saved attraction as the backend returns it
// from GET /api/itineraries: the entry id plus display fields snapshot.
type ItineraryEntry struct {
	EntryID      string   `json:"id"`
	AttractionID string   `json:"attraction_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Images       []string `json:"images"`
	BestSeason   string   `json:"best_season"`
}

// UserProfile is the /api/auth/me payload.
type UserProfile struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Role             Role     `json:"role"`
	Bio              string   `json:"bio"`
	Interests        []string `json:"interests"`
	ProfileCompleted bool     `json:"profile_completed"`
}

// Credentials for POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration for POST /api/auth/register. AdminCode is forwarded
// verbatim; the backend decides whether it grants the admin role.
type Registration struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code,omitempty"`
}

// AuthResult is the login/register response: token plus public user.
type AuthResult struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Prediction is the /api/image/predict response.
type Prediction struct {
	Place      string  `json:"predicted_place"`
	Confidence float64 `json:"confidence"`
}

// VisitorMonth is one point of the dashboard trend chart.
type VisitorMonth struct {
	Month    string `json:"month"`
	Visitors int    `json:"visitors"`
}

// Analytics is the /api/admin/analytics payload.
type Analytics struct {
	TotalVisitors        int            `json:"total_visitors"`
	AttractionsCount     int            `json:"attractions_count"`
	FestivalsCount       int            `json:"festivals_count"`
	AvgEcoScore          float64        `json:"avg_eco_score"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	VisitorTrends        []VisitorMonth `json:"visitor_trends"`
}

// ChatReply is the /api/chat response.
type ChatReply struct {
	Reply         string   `json:"reply"`
	InterestsUsed []string `json:"interests_used"`
}

// Recommendations is the /api/recommendations payload; the attraction
// records arrive in raw shape and go through normalize like any list.
type Recommendations struct {
	UserInterests   []string         `json:"user_interests"`
	Recommendations []map[string]any `json:"recommendations"`
}
