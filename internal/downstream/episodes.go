// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package downstream

import (
	"regexp"
	"strings"

	"github.com/taibuivan/vodbrowse/pkg/convert"
	"github.com/taibuivan/vodbrowse/pkg/pointer"
)

// Play-list separators used by Apple CMS `vod_play_url` values:
//
//	第1集$https://a/1.m3u8#第2集$https://a/2.m3u8$$$第1集$https://b/1.html
const (
	groupSeparator   = "$$$"
	episodeSeparator = "#"
	nameSeparator    = "$"
)

// UnknownYear is reported when an upstream year carries no 4-digit run.
const UnknownYear = "unknown"

var yearPattern = regexp.MustCompile(`\d{4}`)

// extractEpisodes returns the episode URLs of a play list, preferring the
// first group that streams HLS. Without one the first non-empty group wins.
func extractEpisodes(playURL string) []string {
	var fallback []string

	for _, group := range strings.Split(playURL, groupSeparator) {
		episodes := parseGroup(group)
		if len(episodes) == 0 {
			continue
		}
		if isHLS(episodes) {
			return episodes
		}
		if fallback == nil {
			fallback = episodes
		}
	}

	if fallback == nil {
		return []string{}
	}
	return fallback
}

// parseGroup splits one play group into episode URLs.
func parseGroup(group string) []string {
	episodes := []string{}
	for _, entry := range strings.Split(group, episodeSeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		// "name$url" or a bare URL
		if _, url, ok := strings.Cut(entry, nameSeparator); ok {
			entry = strings.TrimSpace(url)
		}
		if entry != "" {
			episodes = append(episodes, entry)
		}
	}
	return episodes
}

func isHLS(episodes []string) bool {
	for _, url := range episodes {
		if strings.Contains(strings.ToLower(url), ".m3u8") {
			return true
		}
	}
	return false
}

// normalizeYear keeps the first 4-digit run of raw.
func normalizeYear(raw string) string {
	if year := yearPattern.FindString(raw); year != "" {
		return year
	}
	return UnknownYear
}

// normalizeDoubanID keeps positive ids only.
func normalizeDoubanID(raw string) *int {
	return pointer.NonZero(max(convert.ToIntD(strings.TrimSpace(raw), 0), 0))
}
