package catalog

import (
	"fmt"
	"strings"
)

// Resource is one referrable program or ministry the generator is
// constrained to choose from. Not persisted per assessment.
type Resource struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
}

// SpiritualPractice is a habit the generator may suggest under the
// Practices category.
type SpiritualPractice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Resources = []Resource{
	// Next Steps
	{
		ID:          "connect-track",
		Name:        "Connect Track",
		Description: "Monthly in-person gathering to learn about MVCC's beliefs, discover more about yourself, and find out how to get involved in serving.",
		Link:        "https://mvccfrederick.com/connect-track",
		Category:    "Next Steps",
		Tags:        []string{"new", "membership", "serving"},
	},
	{
		ID:          "baptism",
		Name:        "Baptism",
		Description: "Public profession of your new life in Jesus. The first step of obedience in following Jesus. MVCC offers baptism opportunities a couple times a year.",
		Link:        "https://mvccfrederick.com/baptism",
		Category:    "Next Steps",
		Tags:        []string{"new believer", "commitment"},
	},
	{
		ID:          "membership-class",
		Name:        "Membership Class",
		Description: "Dive into MVCC's denominational beliefs, specific doctrinal stances, and get equipped with tools to study God's word for yourself.",
		Link:        "https://mvccfrederick.com/connect-track",
		Category:    "Next Steps",
		Tags:        []string{"membership", "learning"},
	},
	{
		ID:          "child-dedication",
		Name:        "Child Dedication",
		Description: "An opportunity to celebrate the gift of children from God and commit before the Lord to raise children according to God's Word.",
		Link:        "https://mvccfrederick.com/child-dedication",
		Category:    "Next Steps",
		Tags:        []string{"family", "children"},
	},

	// Community & Groups
	{
		ID:          "groups",
		Name:        "Groups",
		Description: "Meet in homes around Frederick County to share life, study God's Word, support one another, and serve together.",
		Link:        "https://mvccfrederick.com/groups",
		Category:    "Community",
		Tags:        []string{"community", "small group", "bible study"},
	},
	{
		ID:          "mens-ministry",
		Name:        "Men's Ministry",
		Description: "An ever-expanding circle of diverse men connecting and devoted to Christ, MVCC, and one another. Mission: make fully devoted Christ-centered men who are spiritually growing, serving, leading, and disciple-making.",
		Link:        "https://mvccfrederick.com/men",
		Category:    "Community",
		Tags:        []string{"men", "community", "discipleship"},
	},
	{
		ID:          "mens-breakfast",
		Name:        "Men's Breakfast",
		Description: "Monthly gathering where good food meets great conversation. Share stories, connect with new friends, and discuss openly the real challenges men face today.",
		Link:        "https://mvccfrederick.com/men",
		Category:    "Community",
		Tags:        []string{"men", "fellowship"},
	},
	{
		ID:          "excursion",
		Name:        "Excursion (Men's Adventure Trips)",
		Description: "Outdoor adventures including biking, canoeing, hiking, and fishing trips designed to build community among men.",
		Link:        "https://mvccfrederick.com/excursion",
		Category:    "Community",
		Tags:        []string{"men", "outdoors", "adventure"},
	},
	{
		ID:          "mens-mentoring",
		Name:        "Men's Mentoring",
		Description: "Mentoring opportunities connecting men in small groups for discipleship.",
		Link:        "https://mvccfrederick.com/men",
		Category:    "Community",
		Tags:        []string{"men", "mentoring", "discipleship"},
	},
	{
		ID:          "womens-ministry",
		Name:        "Women's Ministry",
		Description: "Help women come to know and serve God, and to grow in their relationship with Him and with one another through Bible studies, retreats, and mentoring (Triads).",
		Link:        "https://mvccfrederick.com/women",
		Category:    "Community",
		Tags:        []string{"women", "community", "bible study"},
	},
	{
		ID:          "womens-retreat",
		Name:        "Women's Retreat",
		Description: "Annual two-night retreat at White Sulphur Springs for the women of Mountain View.",
		Link:        "https://mvccfrederick.com/women",
		Category:    "Community",
		Tags:        []string{"women", "retreat"},
	},
	{
		ID:          "womens-mentoring",
		Name:        "Women's Mentoring",
		Description: "Mentoring opportunities connecting women in small groups for discipleship.",
		Link:        "https://mvccfrederick.com/women",
		Category:    "Community",
		Tags:        []string{"women", "mentoring", "discipleship"},
	},
	{
		ID:          "marriage-mentoring",
		Name:        "Marriage Mentoring",
		Description: "Christ-centered mentoring program matching couples with trained marriage mentors for 6-8 sessions. For engaged couples or any married couple wanting to strengthen their marriage.",
		Link:        "https://mvccfrederick.com/marriage",
		Category:    "Community",
		Tags:        []string{"marriage", "mentoring", "couples"},
	},
	{
		ID:          "college-ministry",
		Name:        "College Ministry",
		Description: "Meets every other Sunday at 7:00 PM. Weekly small groups, mission trip opportunities, retreats, and special events for college students.",
		Link:        "https://mvccfrederick.com/college",
		Category:    "Community",
		Tags:        []string{"college", "young adults"},
	},

	// Support & Care Groups
	{
		ID:          "griefshare",
		Name:        "GriefShare",
		Description: "13-week program for anyone who has lost a loved one and is grieving. Includes workbook, discussion, and video each session. Meets Thursdays 7-9pm via Zoom.",
		Link:        "https://mvccfrederick.com/grief-share",
		Category:    "Support",
		Tags:        []string{"grief", "loss", "support group"},
	},
	{
		ID:          "divorcecare",
		Name:        "DivorceCare",
		Description: "This group offers a safe place to share, learn, encourage, and connect. You will learn how to heal from the deep hurt of divorce and discover hope for your future.",
		Link:        "https://mvccfrederick.com/groups",
		Category:    "Support",
		Tags:        []string{"divorce", "support group", "healing"},
	},
	{
		ID:          "biblical-counseling",
		Name:        "Biblical Counseling",
		Description: "Christ-centered, biblically-based guidance emphasizing the gospel. Trusting God for grace, comfort, perspective, and peace for life's most difficult situations.",
		Link:        "https://mvccfrederick.com/helpandcare",
		Category:    "Support",
		Tags:        []string{"counseling", "support", "care"},
	},
	{
		ID:          "workmanship",
		Name:        "Workmanship",
		Description: "Ministry connecting people with practical home repair assistance needs with volunteers who can help.",
		Link:        "https://mvccfrederick.com/helpandcare",
		Category:    "Support",
		Tags:        []string{"practical help", "home repair", "serving"},
	},
	{
		ID:          "orphan-care",
		Name:        "Orphan Care Ministry",
		Description: "Partnership with local Department of Social Services to care for orphans and vulnerable children. Opportunities include childcare for foster parents, meals for new placements, mentoring transitioning youth, and becoming a foster parent.",
		Link:        "https://mvccfrederick.com/ovcministry",
		Category:    "Support",
		Tags:        []string{"foster care", "children", "serving"},
	},

	// Classes & Learning
	{
		ID:          "mvu",
		Name:        "Mountain View University (MVU)",
		Description: "Array of courses designed to help you know God, His word, and live out your faith. Equips you to serve and share Christ in your world with practical life skills for personal growth and ministry.",
		Link:        "https://mvccfrederick.com/mvu",
		Category:    "Resources",
		Tags:        []string{"classes", "learning", "discipleship"},
	},

	// Serving Opportunities
	{
		ID:          "childrens-ministry",
		Name:        "Children's Ministry",
		Description: "Serve Sunday mornings at Urbana (9:15 & 11:00am) or North Campus (10:30am). Volunteers are trained and background checked.",
		Link:        "https://mvccfrederick.com/children",
		Category:    "Serving",
		Tags:        []string{"children", "serving", "sunday"},
	},
	{
		ID:          "student-ministry-middle",
		Name:        "Student Ministry - Middle School (The Ridge)",
		Description: "Wednesday nights 6:30-8:30pm. High-energy evening with fellowship, worship, food, message, and small group discussions.",
		Link:        "https://mvccfrederick.com/middle-school",
		Category:    "Serving",
		Tags:        []string{"youth", "students", "serving"},
	},
	{
		ID:          "student-ministry-high",
		Name:        "Student Ministry - High School (The Peak)",
		Description: "Sunday evenings 6:30-8:30pm. Games, worship led by youth band, and inspiring messages.",
		Link:        "https://mvccfrederick.com/high-school",
		Category:    "Serving",
		Tags:        []string{"youth", "students", "serving"},
	},
	{
		ID:          "worship-team",
		Name:        "Worship Team",
		Description: "Musicians and vocalists serving across MVCC campuses. Auditions available for those interested.",
		Link:        "https://mvccfrederick.com/worship",
		Category:    "Serving",
		Tags:        []string{"music", "worship", "serving"},
	},
	{
		ID:          "production-team",
		Name:        "Production Team",
		Description: "Sound, lights, and video production serving the worship experience.",
		Link:        "https://mvccfrederick.com/worship",
		Category:    "Serving",
		Tags:        []string{"technical", "av", "serving"},
	},
	{
		ID:          "hospitality-team",
		Name:        "Hospitality Team",
		Description: "Greeting, coffee, connections - making people feel welcome at MVCC.",
		Link:        "https://mvccfrederick.com/serve",
		Category:    "Serving",
		Tags:        []string{"hospitality", "greeting", "serving"},
	},
	{
		ID:          "outreach-local",
		Name:        "Outreach & Local Missions",
		Description: "Representing Jesus and His Kingdom in neighborhoods and cities through acts of kindness and sharing the Gospel. Includes partnerships with Frederick Rescue Mission.",
		Link:        "https://mvccfrederick.com/outreach",
		Category:    "Serving",
		Tags:        []string{"outreach", "missions", "local", "serving"},
	},
	{
		ID:          "global-missions",
		Name:        "Global Missions",
		Description: "Short-term trips, long-term partnerships, and supporting missionaries worldwide. Opportunities to pray, give, and go.",
		Link:        "https://mvccfrederick.com/globalmissions",
		Category:    "Serving",
		Tags:        []string{"missions", "global", "serving"},
	},

	// Resources & Media
	{
		ID:          "sermon-archive",
		Name:        "Sermon Archive",
		Description: "Catch up on recent services and sermon series from MVCC. Available on YouTube.",
		Link:        "https://mvccfrederick.com/sermon-archive",
		Category:    "Resources",
		Tags:        []string{"sermons", "video", "learning"},
	},
	{
		ID:          "rightnow-media",
		Name:        "RightNow Media",
		Description: "Extensive library with more than 20,000 videos taught by leaders like Francis Chan, Jennie Allen, J.D. Greear, Dr. Tony Evans, and many more. Bible study videos for group study or personal devotions, many with free discussion guides.",
		Link:        "https://app.rightnowmedia.org/join/mvccfrederick",
		Category:    "Resources",
		Tags:        []string{"video", "bible study", "learning", "free"},
	},
	{
		ID:          "cpyu",
		Name:        "CPYU (Center for Parent/Youth Understanding)",
		Description: "Biblical resources to help parents disciple their teens.",
		Link:        "https://cpyu.org",
		Category:    "Resources",
		Tags:        []string{"parenting", "youth", "resources"},
	},
	{
		ID:          "axis",
		Name:        "Axis",
		Description: "Tool for equipping leaders with curriculum for teaching youth.",
		Link:        "https://axis.org",
		Category:    "Resources",
		Tags:        []string{"youth", "teaching", "curriculum"},
	},
}

// SpiritualPractices are habits recommendable under the Practices
// category. They carry no link; the practice name stands alone.
var SpiritualPractices = []SpiritualPractice{
	{
		ID:          "daily-bible-reading",
		Name:        "Daily Bible Reading",
		Description: "Establish a regular habit of reading Scripture. Start with a Gospel like John or Mark.",
	},
	{
		ID:          "scheduled-prayer",
		Name:        "Scheduled Prayer Time",
		Description: "Set aside dedicated time each day for prayer. Start with 5-10 minutes and grow from there.",
	},
	{
		ID:          "journaling",
		Name:        "Journaling",
		Description: "Write out prayers, reflections on Scripture, and what God is teaching you.",
	},
	{
		ID:          "scripture-memorization",
		Name:        "Scripture Memorization",
		Description: "Hide God's word in your heart by memorizing key verses.",
	},
	{
		ID:          "sabbath-rest",
		Name:        "Sabbath Rest",
		Description: "Practice regular rest as an act of trust in God's provision.",
	},
}

// ResourcesForPrompt renders the resource catalog grouped by category as
// name/description/link triples for the generator prompt. Categories keep
// their first-occurrence order in the catalog.
func ResourcesForPrompt() string {
	var order []string
	grouped := make(map[string][]Resource)
	for _, r := range Resources {
		if _, seen := grouped[r.Category]; !seen {
			order = append(order, r.Category)
		}
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	var b strings.Builder
	for _, category := range order {
		fmt.Fprintf(&b, "\n### %s\n", category)
		for _, r := range grouped[category] {
			fmt.Fprintf(&b, "- **%s**: %s (%s)\n", r.Name, r.Description, r.Link)
		}
	}
	return b.String()
}
