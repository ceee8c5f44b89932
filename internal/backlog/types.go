package backlog

import "encoding/json"

// RecentlyViewedProject pairs a project document with when the user last
// viewed it. The project payload is forwarded byte-for-byte; this server
// never interprets its fields.
type RecentlyViewedProject struct {
	Project json.RawMessage `json:"project"`
	Updated string          `json:"updated"`
}

// User represents a Backlog user account.
type User struct {
	ID          int    `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	RoleType    int    `json:"roleType"`
	Lang        string `json:"lang"`
	MailAddress string `json:"mailAddress"`
}

// Space represents the Backlog space the client is bound to.
type Space struct {
	SpaceKey           string `json:"spaceKey"`
	Name               string `json:"name"`
	OwnerID            int    `json:"ownerId"`
	Lang               string `json:"lang"`
	Timezone           string `json:"timezone"`
	ReportSendTime     string `json:"reportSendTime"`
	TextFormattingRule string `json:"textFormattingRule"`
	Created            string `json:"created"`
	Updated            string `json:"updated"`
}
