// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package downstream

import (
	"encoding/xml"
	"strings"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
	"github.com/taibuivan/vodbrowse/pkg/slice"
)

// appleCMSXML decodes the XML rendering of the Apple CMS API (`at=xml`).
//
//	<rss>
//	  <list page="1"><video><id>42</id><name>...</name>
//	    <dl><dd flag="m3u8"><![CDATA[第1集$https://a/1.m3u8]]></dd></dl>
//	  </video></list>
//	  <class><ty id="1">电影</ty></class>
//	</rss>
type appleCMSXML struct{}

type xmlDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Videos  []xmlVideo `xml:"list>video"`
	Types   []xmlType  `xml:"class>ty"`
}

type xmlType struct {
	ID   string `xml:"id,attr"`
	Name string `xml:",chardata"`
}

type xmlVideo struct {
	ID     string         `xml:"id"`
	Name   string         `xml:"name"`
	Pic    string         `xml:"pic"`
	Type   string         `xml:"type"`
	Year   string         `xml:"year"`
	Groups []xmlPlayGroup `xml:"dl>dd"`
}

type xmlPlayGroup struct {
	Flag string `xml:"flag,attr"`
	URLs string `xml:",chardata"`
}

func (appleCMSXML) Params(base map[string]string) map[string]string {
	return withParams(base, map[string]string{"at": "xml"})
}

func (appleCMSXML) Categories(body []byte) ([]catalog.Category, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	categories := slice.Map(doc.Types, func(t xmlType) catalog.Category {
		return catalog.Category{
			TypeID:   strings.TrimSpace(t.ID),
			TypeName: strings.TrimSpace(t.Name),
		}
	})
	return withoutAll(categories), nil
}

func (appleCMSXML) Items(body []byte, src source.Source) ([]catalog.Item, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	return slice.Map(doc.Videos, func(v xmlVideo) catalog.Item {
		groups := slice.Map(v.Groups, func(g xmlPlayGroup) string { return g.URLs })

		return catalog.Item{
			ID:         strings.TrimSpace(v.ID),
			Title:      strings.TrimSpace(v.Name),
			Poster:     strings.TrimSpace(v.Pic),
			Episodes:   extractEpisodes(strings.Join(groups, groupSeparator)),
			Source:     src.Key,
			SourceName: src.Name,
			Year:       normalizeYear(v.Year),
			TypeName:   strings.TrimSpace(v.Type),
		}
	}), nil
}
