package api

// Wire shapes of the SportMap REST API (https://sportmap.akaver.com/api/v1).
// Nullable doubles and strings are pointers so that absent values survive a
// JSON round trip unchanged.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=256"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=256"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	FirstName string `json:"firstName" validate:"required,max=128"`
	LastName  string `json:"lastName" validate:"required,max=128"`
}

type JwtResponse struct {
	Token     string `json:"token"`
	Status    string `json:"status"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type GpsSession struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	RecordedAt       string   `json:"recordedAt"`
	Duration         *float64 `json:"duration,omitempty"`
	Speed            *float64 `json:"speed,omitempty"`
	Distance         *float64 `json:"distance,omitempty"`
	Climb            *float64 `json:"climb,omitempty"`
	Descent          *float64 `json:"descent,omitempty"`
	PaceMin          *float64 `json:"paceMin,omitempty"`
	PaceMax          *float64 `json:"paceMax,omitempty"`
	GpsSessionTypeID string   `json:"gpsSessionTypeId"`
	AppUserID        string   `json:"appUserId"`
}

// GpsSessionView is the read-optimized listing shape: denormalized type and
// owner names plus a location count instead of raw foreign keys.
type GpsSessionView struct {
	ID                string   `json:"id"`
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	RecordedAt        string   `json:"recordedAt"`
	Duration          *float64 `json:"duration,omitempty"`
	Speed             *float64 `json:"speed,omitempty"`
	Distance          *float64 `json:"distance,omitempty"`
	Climb             *float64 `json:"climb,omitempty"`
	Descent           *float64 `json:"descent,omitempty"`
	PaceMin           *float64 `json:"paceMin,omitempty"`
	PaceMax           *float64 `json:"paceMax,omitempty"`
	GpsSessionType    *string  `json:"gpsSessionType,omitempty"`
	GpsLocationsCount int      `json:"gpsLocationsCount"`
	UserFirstLastName *string  `json:"userFirstLastName,omitempty"`
}

type GpsSessionCreate struct {
	Name             string   `json:"name" validate:"required,min=2,max=256"`
	Description      string   `json:"description" validate:"required,min=2,max=4096"`
	GpsSessionTypeID string   `json:"gpsSessionTypeId" validate:"required,uuid"`
	RecordedAt       *string  `json:"recordedAt,omitempty"`
	PaceMin          *float64 `json:"paceMin,omitempty"`
	PaceMax          *float64 `json:"paceMax,omitempty"`
}

type GpsSessionUpdate struct {
	ID               string  `json:"id" validate:"required,uuid"`
	Name             string  `json:"name" validate:"required,max=256"`
	Description      string  `json:"description" validate:"required,max=4096"`
	RecordedAt       string  `json:"recordedAt" validate:"required"`
	PaceMin          float64 `json:"paceMin"`
	PaceMax          float64 `json:"paceMax"`
	GpsSessionTypeID string  `json:"gpsSessionTypeId" validate:"required,uuid"`
}

type GpsLocation struct {
	ID                string   `json:"id"`
	RecordedAt        string   `json:"recordedAt"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Accuracy          *float64 `json:"accuracy,omitempty"`
	Altitude          *float64 `json:"altitude,omitempty"`
	VerticalAccuracy  *float64 `json:"verticalAccuracy,omitempty"`
	AppUserID         string   `json:"appUserId"`
	GpsSessionID      string   `json:"gpsSessionId"`
	GpsLocationTypeID string   `json:"gpsLocationTypeId"`
}

type GpsSessionType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PaceMin     *int   `json:"paceMin,omitempty"`
	PaceMax     *int   `json:"paceMax,omitempty"`
}

type GpsLocationType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProblemDetails is the RFC 7807 style failure body the API returns on most
// errors; Errors carries ASP.NET validation failures keyed by field.
type ProblemDetails struct {
	Type     *string             `json:"type,omitempty"`
	Title    *string             `json:"title,omitempty"`
	Status   *int                `json:"status,omitempty"`
	Detail   *string             `json:"detail,omitempty"`
	Instance *string             `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Message  *string             `json:"message,omitempty"`
}
