package catalog

// Experiences are the selectable life-experience tags.
var Experiences = []string{
	"You have been divorced",
	"You have struggled with addiction",
	"You are dealing with grief/loss",
	"You are experiencing financial stress",
	"You are in a difficult marriage",
	"You are a single parent",
	"You are involved in foster care or considering it",
}

// Skills are the selectable skill/passion tags.
var Skills = []string{
	"Administration/Organization",
	"Teaching/Education",
	"Music/Worship",
	"Hospitality/Greeting",
	"Outreach/Evangelism",
	"Working with children",
	"Working with youth/students",
	"Technical/AV/Production",
	"Counseling/Mentoring",
	"Building/Maintenance",
}
