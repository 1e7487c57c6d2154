package data

import _ "embed"

//go:embed announcement.en.template
var AnnouncementTemplate string
