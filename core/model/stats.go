package model

import "emoji-catalog/core/decode"

// PageStats is a snapshot of the site statistics. It is never cached.
type PageStats struct {
	EmojiCount       int `json:"emoji"`
	UserCount        int `json:"users"`
	TotalFaves       int `json:"faves"`
	PendingApprovals int `json:"pending_approvals"`
}

// NewPageStats reads stats from a decoded object. Missing counts are zero.
func NewPageStats(fields decode.FieldMap) PageStats {
	return PageStats{
		EmojiCount:       fields.IntOr("emoji", 0),
		UserCount:        fields.IntOr("users", 0),
		TotalFaves:       fields.IntOr("faves", 0),
		PendingApprovals: fields.IntOr("pending_approvals", 0),
	}
}
