package pkg

// base32 alphabet shared by encoder and decoder. 32 symbols,
// excludes I, L, O, U (visually ambiguous).
const (
	ALPHABET = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	BASE     = 32
)

const (
	MIN_LATITUDE  = -90.0
	MAX_LATITUDE  = 90.0
	MIN_LONGITUDE = -180.0
	MAX_LONGITUDE = 180.0

	LATITUDE_RANGE_DEGREE  = MAX_LATITUDE - MIN_LATITUDE
	LONGITUDE_RANGE_DEGREE = MAX_LONGITUDE - MIN_LONGITUDE
)

// bit allocation for 9 base32 characters (45 bits total).
// 22 bit latitude + 23 bit longitude, latitude in the upper bits.
const (
	LAT_BITS = 22
	LON_BITS = 23
	LAT_MAX  = (1 << LAT_BITS) - 1
	LON_MAX  = (1 << LON_BITS) - 1

	PACKED_BITS = LAT_BITS + LON_BITS
)

const (
	CODE_LENGTH           = 9
	FORMATTED_CODE_LENGTH = 11
)

const (
	EARTH_RADIUS_M        = 6371000.0
	METERS_PER_DEGREE_LAT = 111320.0

	// south pole to north pole in meters
	TOTAL_LAT_RANGE_M = LATITUDE_RANGE_DEGREE * METERS_PER_DEGREE_LAT
)

const (
	// above this band-center latitude one longitude degree carries almost
	// no meters, so longitude falls back to degree quantization
	POLAR_LATITUDE_THRESHOLD = 89.0

	// latitude clamp used by the meter-based neighbor scan and the
	// radius search window
	NEIGHBOR_LATITUDE_LIMIT = 80.0

	// ~3 meters expressed in degrees at the equator
	NEIGHBOR_STEP_DEGREE = 0.000027
)
