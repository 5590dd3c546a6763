package osm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"nestfind/config"
	"nestfind/models"
	"nestfind/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrUpstream signals a failure of an OpenStreetMap collaborator. Handlers
// surface it as a bad-gateway condition.
var ErrUpstream = errors.New("openstreetmap service unavailable")

// DefaultAccommodationTypes are searched when the caller does not narrow
// the set.
var DefaultAccommodationTypes = []string{"hostel", "dormitory", "apartments", "hotel", "guest_house"}

// tagMapping translates accommodation types to the OSM tags that mark them.
var tagMapping = map[string][]string{
	"hostel":      {"tourism=hostel"},
	"dormitory":   {"amenity=dormitory", "building=dormitory"},
	"apartments":  {"building=apartments"},
	"flat":        {"building=residential", "residential=apartment"},
	"pg":          {"leisure=lodging", "amenity=lodging", "tourism=guest_house"},
	"hotel":       {"tourism=hotel"},
	"guest_house": {"tourism=guest_house"},
}

const cacheTTL = 15 * time.Minute

// OSMService resolves free-text locations and finds real accommodations
// around them using Nominatim and Overpass.
type OSMService interface {
	SearchAccommodation(ctx context.Context, query string, radiusKm float64, types []string) (*models.OSMSearchResult, error)
}

// DefaultOSMService implements OSMService. Requests to the public OSM
// endpoints are throttled to one per second per their usage policy.
type DefaultOSMService struct {
	Client  *http.Client
	limiter *rate.Limiter
}

// NewOSMService creates an OSM service with a shared HTTP client.
func NewOSMService() *DefaultOSMService {
	return &DefaultOSMService{
		Client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// SearchAccommodation geocodes the query and returns accommodations within
// the radius. Responses are cached so repeated lookups do not hit the
// public endpoints.
func (s *DefaultOSMService) SearchAccommodation(ctx context.Context, query string, radiusKm float64, types []string) (*models.OSMSearchResult, error) {
	if len(types) == 0 {
		types = DefaultAccommodationTypes
	}
	sorted := append([]string(nil), types...)
	sort.Strings(sorted)
	cacheKey := fmt.Sprintf("osm:%s:%.2f:%s", strings.ToLower(strings.TrimSpace(query)), radiusKm, strings.Join(sorted, ","))

	if cached, err := utils.GetCacheClient().Get(ctx, cacheKey).Result(); err == nil {
		var result models.OSMSearchResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	loc, err := s.geocode(ctx, query)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return &models.OSMSearchResult{
			Success:  false,
			Message:  fmt.Sprintf("Location '%s' not found", query),
			RadiusKm: radiusKm,
			Results:  []models.OSMAccommodation{},
		}, nil
	}

	accommodations, err := s.queryOverpass(ctx, loc.Latitude, loc.Longitude, radiusKm, types)
	if err != nil {
		return nil, err
	}

	result := &models.OSMSearchResult{
		Success:      true,
		Location:     loc,
		RadiusKm:     radiusKm,
		TotalResults: len(accommodations),
		Results:      accommodations,
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = utils.GetCacheClient().Set(ctx, cacheKey, payload, cacheTTL).Err()
	}
	return result, nil
}

// geocode resolves a free-text location via Nominatim. A nil location with
// a nil error means the place was not found.
func (s *DefaultOSMService) geocode(ctx context.Context, query string) (*models.OSMLocation, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/search?%s", config.AppConfig.NominatimURL, url.Values{
		"q":              {query},
		"format":         {"json"},
		"limit":          {"1"},
		"addressdetails": {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", config.AppConfig.OSMUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoding request failed: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		zap.L().Error("nominatim returned a non-200 status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: geocoding returned status %d", ErrUpstream, resp.StatusCode)
	}

	var places []struct {
		Lat         string            `json:"lat"`
		Lon         string            `json:"lon"`
		DisplayName string            `json:"display_name"`
		Address     map[string]string `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: failed to decode geocoding response: %v", ErrUpstream, err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed latitude in geocoding response: %v", ErrUpstream, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed longitude in geocoding response: %v", ErrUpstream, err)
	}

	return &models.OSMLocation{
		DisplayName: places[0].DisplayName,
		Latitude:    lat,
		Longitude:   lon,
		Address:     places[0].Address,
	}, nil
}

// queryOverpass fetches accommodation elements around a point. Nodes carry
// their own coordinates; ways and relations use the computed center.
func (s *DefaultOSMService) queryOverpass(ctx context.Context, lat, lon, radiusKm float64, types []string) ([]models.OSMAccommodation, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	radius := int(radiusKm * 1000)
	var parts []string
	for _, t := range types {
		for _, tag := range tagMapping[t] {
			kv := strings.SplitN(tag, "=", 2)
			for _, kind := range []string{"node", "way", "relation"} {
				parts = append(parts, fmt.Sprintf(`%s["%s"="%s"](around:%d,%f,%f);`, kind, kv[0], kv[1], radius, lat, lon))
			}
		}
	}
	overpassQuery := fmt.Sprintf("[out:json][timeout:25];(%s);out body;out center;", strings.Join(parts, ""))

	form := url.Values{"data": {overpassQuery}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.AppConfig.OverpassURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", config.AppConfig.OSMUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: overpass request failed: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		zap.L().Error("overpass returned a non-200 status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: overpass returned status %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Elements []struct {
			Type   string            `json:"type"`
			ID     int64             `json:"id"`
			Lat    float64           `json:"lat"`
			Lon    float64           `json:"lon"`
			Center *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"center"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode overpass response: %v", ErrUpstream, err)
	}

	results := make([]models.OSMAccommodation, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		elLat, elLon := el.Lat, el.Lon
		if el.Type != "node" {
			if el.Center == nil {
				continue
			}
			elLat, elLon = el.Center.Lat, el.Center.Lon
		}
		if elLat == 0 && elLon == 0 {
			continue
		}

		accType := classifyTags(el.Tags)
		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed " + titleCase(accType)
		}

		results = append(results, models.OSMAccommodation{
			ID:        el.ID,
			Name:      name,
			Type:      accType,
			Latitude:  elLat,
			Longitude: elLon,
			Address: models.OSMAddress{
				Street:      el.Tags["addr:street"],
				HouseNumber: el.Tags["addr:housenumber"],
				City:        el.Tags["addr:city"],
				State:       el.Tags["addr:state"],
				Postcode:    el.Tags["addr:postcode"],
				Country:     el.Tags["addr:country"],
			},
			Contact: models.OSMContact{
				Phone:   el.Tags["phone"],
				Website: el.Tags["website"],
				Email:   el.Tags["email"],
			},
			Amenities: models.OSMAmenities{
				Internet:   el.Tags["internet"] == "yes" || el.Tags["wifi"] == "yes",
				Wheelchair: el.Tags["wheelchair"] == "yes",
				Parking:    el.Tags["parking"] == "yes",
			},
		})
	}
	return results, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// classifyTags picks the accommodation type out of an element's tags.
func classifyTags(tags map[string]string) string {
	switch tags["tourism"] {
	case "hostel", "hotel", "guest_house":
		return tags["tourism"]
	}
	switch tags["amenity"] {
	case "dormitory", "lodging":
		return tags["amenity"]
	}
	switch tags["building"] {
	case "apartments", "dormitory", "residential":
		return tags["building"]
	}
	if tags["residential"] == "apartment" {
		return "flat"
	}
	return "accommodation"
}
