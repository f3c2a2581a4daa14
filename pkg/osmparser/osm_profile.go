package osmparser

import (
	"strconv"
	"strings"

	"lintang/routesearch/pkg/datastructure"
)

// https://github.com/RoutingKit/RoutingKit/blob/master/src/osm_profile.cpp  [is_osm_way_used_by_cars()]
func isOsmWayUsedByCars(tagMap map[string]string) bool {
	if _, ok := tagMap["junction"]; ok {
		return true
	}
	if route, ok := tagMap["route"]; ok && route == "ferry" {
		return true
	}
	if ferry, ok := tagMap["ferry"]; ok && ferry == "yes" {
		return true
	}

	highway, okHW := tagMap["highway"]
	if !okHW {
		return false
	}
	if motorcar, ok := tagMap["motorcar"]; ok && motorcar == "no" {
		return false
	}
	if motorVehicle, ok := tagMap["motor_vehicle"]; ok && motorVehicle == "no" {
		return false
	}
	if access, ok := tagMap["access"]; ok {
		if !(access == "yes" || access == "permissive" || access == "designated" || access == "delivery" || access == "destination") {
			return false
		}
	}

	switch highway {
	case "motorway", "trunk", "primary", "secondary", "tertiary", "unclassified", "residential",
		"living_street", "service", "motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link":
		return true
	case "bicycle_road":
		return tagMap["motorcar"] == "yes"
	case "construction", "path", "footway", "cycleway", "bridleway", "pedestrian", "bus_guideway",
		"raceway", "escape", "steps", "proposed", "conveying":
		return false
	}

	if oneway, ok := tagMap["oneway"]; ok && (oneway == "reversible" || oneway == "alternating") {
		return false
	}

	_, ok := tagMap["maxspeed"]
	return ok
}

// wayProfile atribut way yang dipakai untuk bikin segment.
type wayProfile struct {
	name     string
	roadType string
	// km/h
	maxSpeed       float64
	oneWay         bool
	reversedOneWay bool
}

func getWayProfile(tagMap map[string]string) wayProfile {
	p := wayProfile{
		name:     tagMap["name"],
		roadType: tagMap["highway"],
	}

	switch tagMap["oneway"] {
	case "yes", "1", "true":
		p.oneWay = true
	case "-1", "reverse":
		p.oneWay = true
		p.reversedOneWay = true
	case "no", "false", "0":
	default:
		// roundabout & motorway default oneway kalau tidak ada tag oneway
		if tagMap["junction"] == "roundabout" || p.roadType == "motorway" {
			p.oneWay = true
		}
	}

	if speed, ok := parseMaxSpeed(tagMap["maxspeed"]); ok {
		p.maxSpeed = speed
	} else {
		p.maxSpeed = datastructure.RoadTypeMaxSpeed(p.roadType)
	}
	return p
}

// parseMaxSpeed "50", "30 mph", "60 km/h". selain itu (misal "signals", "none") false.
func parseMaxSpeed(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	factor := 1.0
	switch {
	case strings.HasSuffix(v, "mph"):
		factor = 1.609344
		v = strings.TrimSpace(strings.TrimSuffix(v, "mph"))
	case strings.HasSuffix(v, "km/h"):
		v = strings.TrimSpace(strings.TrimSuffix(v, "km/h"))
	}
	speed, err := strconv.ParseFloat(v, 64)
	if err != nil || speed <= 0 {
		return 0, false
	}
	return speed * factor, true
}
