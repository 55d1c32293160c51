// Package sky places a sun light in the scene for a given time and place.
package sky

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/echoflaresat/tinyray/scene"
	"github.com/echoflaresat/tinyray/vectors"
)

// SunDistance is how far away the sun light is placed. It only needs to be
// far outside any scene so that shadows are nearly parallel.
const SunDistance = 1e4

// SunDirectionECEF returns the unit vector from the Earth's center toward the
// sun in Earth-centered, Earth-fixed coordinates (Z through the north pole).
func SunDirectionECEF(t time.Time) [3]float64 {
	jd := julian.TimeToJD(t.UTC())

	// apparent RA/Dec of the sun
	ra, dec := solar.ApparentEquatorial(jd)

	// unit vector in the inertial frame
	sinRA, cosRA := math.Sincos(ra.Rad())
	sinDec, cosDec := math.Sincos(dec.Rad())
	x := cosDec * cosRA
	y := cosDec * sinRA
	z := sinDec

	// rotate into the Earth-fixed frame by sidereal time
	sinGST, cosGST := math.Sincos(sidereal.Apparent(jd).Angle().Rad())

	return [3]float64{
		x*cosGST + y*sinGST,
		-x*sinGST + y*cosGST,
		z,
	}
}

// SunDirection returns the direction toward the sun as seen by an observer
// at latDeg/lonDeg, in scene coordinates: +X east, +Y up, -Z north.
func SunDirection(t time.Time, latDeg, lonDeg float64) vectors.Vec3 {
	s := SunDirectionECEF(t)

	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	east := -sinLon*s[0] + cosLon*s[1]
	north := -sinLat*cosLon*s[0] - sinLat*sinLon*s[1] + cosLat*s[2]
	up := cosLat*cosLon*s[0] + cosLat*sinLon*s[1] + sinLat*s[2]

	return vectors.Vec3{float32(east), float32(up), float32(-north)}
}

// Elevation returns the sun's angle above the horizon in degrees.
func Elevation(t time.Time, latDeg, lonDeg float64) float64 {
	d := SunDirection(t, latDeg, lonDeg)
	return math.Asin(float64(d[1])) * 180 / math.Pi
}

// SunLight returns a distant point light in the direction of the sun. The
// second result is false when the sun is below the horizon.
func SunLight(t time.Time, latDeg, lonDeg float64, intensity float32) (scene.Light, bool) {
	dir := SunDirection(t, latDeg, lonDeg)
	if dir[1] <= 0 {
		return scene.Light{}, false
	}
	return scene.NewLight(dir.Mul(SunDistance), intensity), true
}
