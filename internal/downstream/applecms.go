// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package downstream

import (
	"encoding/json"
	"strings"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
	"github.com/taibuivan/vodbrowse/pkg/convert"
	"github.com/taibuivan/vodbrowse/pkg/slice"
)

// appleCMS decodes the Apple CMS v10 JSON API.
//
//	?ac=list                  -> {"class":[{"type_id":1,"type_name":"电影"}]}
//	?ac=videolist&t=1&pg=2    -> {"list":[{"vod_id":42,"vod_name":"..."}]}
type appleCMS struct{}

type cmsClass struct {
	TypeID   convert.FlexString `json:"type_id"`
	TypeName string             `json:"type_name"`
}

type cmsVideo struct {
	VodID       convert.FlexString `json:"vod_id"`
	VodName     string             `json:"vod_name"`
	VodPic      string             `json:"vod_pic"`
	VodPlayURL  string             `json:"vod_play_url"`
	VodYear     convert.FlexString `json:"vod_year"`
	VodDoubanID convert.FlexString `json:"vod_douban_id"`
	TypeName    string             `json:"type_name"`
}

type cmsResponse struct {
	Class []cmsClass `json:"class"`
	List  []cmsVideo `json:"list"`
}

func (appleCMS) Params(base map[string]string) map[string]string {
	return withParams(base, nil)
}

func (appleCMS) Categories(body []byte) ([]catalog.Category, error) {
	var resp cmsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	categories := slice.Map(resp.Class, func(c cmsClass) catalog.Category {
		return catalog.Category{
			TypeID:   c.TypeID.String(),
			TypeName: strings.TrimSpace(c.TypeName),
		}
	})
	return withoutAll(categories), nil
}

func (appleCMS) Items(body []byte, src source.Source) ([]catalog.Item, error) {
	var resp cmsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	return slice.Map(resp.List, func(v cmsVideo) catalog.Item {
		return catalog.Item{
			ID:         v.VodID.String(),
			Title:      strings.TrimSpace(v.VodName),
			Poster:     strings.TrimSpace(v.VodPic),
			Episodes:   extractEpisodes(v.VodPlayURL),
			Source:     src.Key,
			SourceName: src.Name,
			DoubanID:   normalizeDoubanID(v.VodDoubanID.String()),
			Year:       normalizeYear(v.VodYear.String()),
			TypeName:   strings.TrimSpace(v.TypeName),
		}
	}), nil
}

// withoutAll drops upstream categories without an id; the empty id is
// reserved for the synthetic all category.
func withoutAll(categories []catalog.Category) []catalog.Category {
	return slice.Filter(categories, func(c catalog.Category) bool { return !c.IsAll() })
}
