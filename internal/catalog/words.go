// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// DefaultDenylist holds the category labels hidden from listings unless the
// filter is disabled at startup.
var DefaultDenylist = []string{
	"伦理片",
	"福利",
	"里番动漫",
	"门事件",
	"萝莉少女",
	"制服诱惑",
	"国产传媒",
	"cosplay",
	"黑丝诱惑",
	"无码",
	"日本无码",
	"有码",
	"日本有码",
	"SWAG",
	"网红主播",
	"色情片",
	"同性片",
	"福利视频",
	"福利片",
	"写真热舞",
	"倫理片",
	"理论片",
	"韩国伦理",
	"港台三级",
	"伦理",
	"日本伦理",
}
