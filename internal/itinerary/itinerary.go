// Package itinerary splits a list of sights into evenly sized travel days.
package itinerary

import (
	"fmt"
)

// Bounds on the number of travel days
const (
	MinDays = 1
	MaxDays = 3
)

// Place is a sight with its nearest subway station
type Place struct {
	Name        string  `json:"name" yaml:"name"`
	Lat         float64 `json:"lat" yaml:"lat"`
	Lon         float64 `json:"lon" yaml:"lon"`
	Description string  `json:"description" yaml:"description"`
	Subway      string  `json:"subway" yaml:"subway"`
}

// Day is one day of a plan
type Day struct {
	Day    int     `json:"day" yaml:"day"`
	Places []Place `json:"places" yaml:"places"`
}

// Plan is the full schedule plus the map center
type Plan struct {
	Days      []Day   `json:"days" yaml:"days"`
	PerDay    int     `json:"per_day" yaml:"per_day"`
	CenterLat float64 `json:"center_lat" yaml:"center_lat"`
	CenterLon float64 `json:"center_lon" yaml:"center_lon"`
}

// SeoulTop10 are the ten sights foreign visitors favour most.
var SeoulTop10 = []Place{
	{"Gyeongbokgung Palace (경복궁)", 37.5796, 126.9770, "조선의 대표 궁궐, 광화문과 수문장 교대식이 유명함.", "3호선 경복궁역"},
	{"N Seoul Tower (남산타워)", 37.5512, 126.9882, "서울 중심 전망대, 야경 명소로 유명함.", "4호선 명동역"},
	{"Myeongdong (명동)", 37.5638, 126.9850, "쇼핑과 길거리 음식의 중심지.", "4호선 명동역"},
	{"Bukchon Hanok Village (북촌한옥마을)", 37.5826, 126.9830, "전통 한옥 거리와 포토 스팟.", "3호선 안국역"},
	{"Hongdae (홍대)", 37.5563, 126.9220, "젊음의 거리, 예술·음악·카페 문화가 활발한 지역.", "2호선 홍대입구역"},
	{"Itaewon (이태원)", 37.5346, 126.9946, "다양한 외국 식당과 밤문화가 공존하는 거리.", "6호선 이태원역"},
	{"Dongdaemun Design Plaza (동대문 DDP)", 37.5663, 127.0090, "현대적 디자인 랜드마크, 패션·야시장 중심지.", "2·4·5호선 동대문역사문화공원역"},
	{"Insadong (인사동)", 37.5740, 126.9852, "전통 공예품과 찻집이 즐비한 거리.", "3호선 안국역"},
	{"Lotte World Tower (롯데월드타워)", 37.5131, 127.1019, "서울 최고층 타워, 쇼핑몰·전망대 포함.", "2호선 잠실역"},
	{"Hangang Park (한강공원, 여의도)", 37.5269, 126.9241, "한강변에서 자전거와 피크닉을 즐길 수 있음.", "5호선 여의나루역"},
}

// Center returns the mean latitude and longitude.
func Center(places []Place) (lat, lon float64) {
	if len(places) == 0 {
		return 0, 0
	}
	for _, p := range places {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(places))
	return lat / n, lon / n
}

// Split assigns places to days in order, ceil(n/days) per day. Trailing days
// may be short or empty.
func Split(places []Place, days int) (*Plan, error) {
	if days < MinDays || days > MaxDays {
		return nil, fmt.Errorf("days must be between %d and %d, got %d", MinDays, MaxDays, days)
	}

	perDay := (len(places) + days - 1) / days
	plan := &Plan{PerDay: perDay, Days: make([]Day, days)}
	plan.CenterLat, plan.CenterLon = Center(places)

	for d := 0; d < days; d++ {
		start := min(d*perDay, len(places))
		end := min(start+perDay, len(places))
		plan.Days[d] = Day{Day: d + 1, Places: append([]Place{}, places[start:end]...)}
	}
	return plan, nil
}
