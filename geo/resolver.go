package geo

import (
	"fmt"

	"github.com/resqlink/resqlink-api/external/geoinfo"
	"github.com/resqlink/resqlink-api/schema"
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// LocationResolver - interface for resolving location
type LocationResolver interface {
	GetPoliticalInfo(schema.Location) (schema.Location, error)
}

var defaultResolver LocationResolver

type GeocodingLocationResolver struct {
	client geoinfo.GeoInfo
}

func NewGeocodingLocationResolver(client geoinfo.GeoInfo) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

// GetPoliticalInfo fills the district and state of a location from its
// coordinates. Areas already set by the caller are kept.
func (g *GeocodingLocationResolver) GetPoliticalInfo(loc schema.Location) (schema.Location, error) {
	if loc.District != "" && loc.State != "" {
		return loc, nil
	}

	geos, err := g.client.Get(loc)
	if nil != err {
		return loc, err
	}

	if len(geos) == 0 {
		return loc, ErrNoGeoInfoFound
	}

	var level1, level2 string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "administrative_area_level_1":
				level1 = a.LongName
			case "administrative_area_level_2":
				level2 = a.LongName
			case "country":
				loc.Country = a.LongName
			}
		}
	}

	loc.Address = geos[0].FormattedAddress
	if loc.District == "" {
		loc.District = level2
	}
	if loc.State == "" {
		loc.State = level1
	}

	return loc, nil
}

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

func PoliticalGeoInfo(loc schema.Location) (schema.Location, error) {
	if defaultResolver == nil {
		return schema.Location{}, ErrResolverNotInitialized
	}

	return defaultResolver.GetPoliticalInfo(loc)
}
