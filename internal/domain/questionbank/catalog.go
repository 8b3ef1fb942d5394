package questionbank

import "github.com/P-Pranath/Unora-app/internal/domain/personality"

// Shorthand aliases to keep the catalog readable.
const (
	er = personality.EmotionalRegulation
	cs = personality.CommunicationStyle
	ea = personality.EmotionalAvailability
	ct = personality.ConsistencyStyle
	cp = personality.ConflictPosture
	eo = personality.EnergyOrientation
	dp = personality.DecisionPace
)

type dims = []personality.Dimension
type impacts = map[personality.Dimension]float64

// catalog holds every scenario question served by the assessment.
// Questions are situational, never self-descriptive, and no option is a
// "right" answer. Impact deltas stay within [-0.3, +0.3].
var catalog = []Question{
	// ── Emotional regulation ───────────────────────────────────────────
	{
		ID:               "Q_ER_01",
		Scenario:         "A plan you were excited about gets cancelled last minute.",
		DimensionTargets: dims{er},
		Options: []Option{
			{Label: "I'm annoyed briefly, then move on to something else", Impacts: impacts{er: 0.25}},
			{Label: "It throws me off for a while, but I adjust", Impacts: impacts{er: 0.0}},
			{Label: "I feel quite disappointed and need some time to reset", Impacts: impacts{er: -0.2}},
		},
	},
	{
		ID:               "Q_ER_02",
		Scenario:         "Someone close to you gives you unexpected critical feedback.",
		DimensionTargets: dims{er, cp},
		Options: []Option{
			{Label: "I take a moment, then try to understand their perspective", Impacts: impacts{er: 0.2, cp: 0.1}},
			{Label: "I feel defensive at first but come around later", Impacts: impacts{er: 0.0, cp: -0.1}},
			{Label: "It stings and I need space before I can process it", Impacts: impacts{er: -0.15, cp: -0.15}},
		},
	},
	{
		ID:               "Q_ER_03",
		Scenario:         "You're stuck in traffic and running late to something important.",
		DimensionTargets: dims{er},
		Options: []Option{
			{Label: "I accept it and use the time to listen to something", Impacts: impacts{er: 0.25}},
			{Label: "I'm frustrated but try to stay calm", Impacts: impacts{er: 0.05}},
			{Label: "I feel stressed and keep checking the time", Impacts: impacts{er: -0.2}},
		},
	},
	{
		ID:               "Q_ER_04",
		Scenario:         "Something you were counting on falls through at the last moment.",
		DimensionTargets: dims{er, ct},
		Options: []Option{
			{Label: "I quickly look for alternatives and adapt", Impacts: impacts{er: 0.2, ct: -0.15}},
			{Label: "I'm upset but start problem-solving after a bit", Impacts: impacts{er: 0.0, ct: 0.0}},
			{Label: "I feel rattled and need time to regroup", Impacts: impacts{er: -0.2, ct: 0.1}},
		},
	},

	// ── Communication style ────────────────────────────────────────────
	{
		ID:               "Q_CS_01",
		Scenario:         "A friend asks if you like their new outfit, but you honestly don't.",
		DimensionTargets: dims{cs, ea},
		Options: []Option{
			{Label: "I gently say it's not my favorite but they look great anyway", Impacts: impacts{cs: 0.15, ea: 0.1}},
			{Label: "I focus on something positive about it instead", Impacts: impacts{cs: -0.15, ea: 0.15}},
			{Label: "I'm honest and tell them what I really think", Impacts: impacts{cs: 0.25, ea: -0.05}},
		},
	},
	{
		ID:               "Q_CS_02",
		Scenario:         "Someone keeps interrupting you during a conversation.",
		DimensionTargets: dims{cs, cp},
		Options: []Option{
			{Label: "I calmly point out that I'd like to finish my thought", Impacts: impacts{cs: 0.2, cp: 0.15}},
			{Label: "I wait for a pause and try to get my point across", Impacts: impacts{cs: -0.1, cp: -0.1}},
			{Label: "I let it go but feel frustrated inside", Impacts: impacts{cs: -0.2, cp: -0.2}},
		},
	},
	{
		ID:               "Q_CS_03",
		Scenario:         "You need to explain a problem to someone who might not want to hear it.",
		DimensionTargets: dims{cs},
		Options: []Option{
			{Label: "I present the facts directly but with kindness", Impacts: impacts{cs: 0.2}},
			{Label: "I ease into it with context before getting to the point", Impacts: impacts{cs: -0.1}},
			{Label: "I hint at it and see if they pick up on it", Impacts: impacts{cs: -0.25}},
		},
	},
	{
		ID:               "Q_CS_04",
		Scenario:         "You're asked how you feel about a sensitive topic.",
		DimensionTargets: dims{cs, ea},
		Options: []Option{
			{Label: "I share my honest feelings clearly", Impacts: impacts{cs: 0.2, ea: 0.2}},
			{Label: "I share some of what I feel, but keep parts private", Impacts: impacts{cs: 0.0, ea: 0.0}},
			{Label: "I deflect or give a vague answer", Impacts: impacts{cs: -0.2, ea: -0.2}},
		},
	},

	// ── Emotional availability ─────────────────────────────────────────
	{
		ID:               "Q_EA_01",
		Scenario:         "A friend reaches out when they're going through a tough time.",
		DimensionTargets: dims{ea, eo},
		Options: []Option{
			{Label: "I make time immediately and listen to what they need", Impacts: impacts{ea: 0.25, eo: 0.1}},
			{Label: "I check in with them and offer practical support", Impacts: impacts{ea: 0.1, eo: 0.0}},
			{Label: "I want to help but find emotional situations draining", Impacts: impacts{ea: -0.15, eo: -0.1}},
		},
	},
	{
		ID:               "Q_EA_02",
		Scenario:         "You've been feeling stressed lately.",
		DimensionTargets: dims{ea, cs},
		Options: []Option{
			{Label: "I open up to someone I trust about what's going on", Impacts: impacts{ea: 0.25, cs: 0.1}},
			{Label: "I mention I'm stressed but keep the details private", Impacts: impacts{ea: 0.0, cs: -0.1}},
			{Label: "I prefer to work through it on my own", Impacts: impacts{ea: -0.2, cs: -0.1}},
		},
	},
	{
		ID:               "Q_EA_03",
		Scenario:         "Someone you recently met shares something personal with you.",
		DimensionTargets: dims{ea},
		Options: []Option{
			{Label: "I appreciate their openness and share something back", Impacts: impacts{ea: 0.2}},
			{Label: "I listen attentively and respond supportively", Impacts: impacts{ea: 0.1}},
			{Label: "I feel a bit uncomfortable and keep things surface-level", Impacts: impacts{ea: -0.2}},
		},
	},
	{
		ID:               "Q_EA_04",
		Scenario:         "A close relationship has felt distant lately.",
		DimensionTargets: dims{ea, cp},
		Options: []Option{
			{Label: "I reach out and express that I want to reconnect", Impacts: impacts{ea: 0.2, cp: 0.1}},
			{Label: "I give it some time and see if things improve naturally", Impacts: impacts{ea: -0.1, cp: -0.1}},
			{Label: "I pull back too, matching their energy", Impacts: impacts{ea: -0.2, cp: -0.15}},
		},
	},

	// ── Consistency style ──────────────────────────────────────────────
	{
		ID:               "Q_CT_01",
		Scenario:         "Your weekly routine gets disrupted by an unexpected opportunity.",
		DimensionTargets: dims{ct, dp},
		Options: []Option{
			{Label: "I adjust my plans and take the opportunity", Impacts: impacts{ct: -0.2, dp: 0.1}},
			{Label: "I weigh the trade-offs before deciding", Impacts: impacts{ct: 0.0, dp: -0.1}},
			{Label: "I prefer to stick with my original plans", Impacts: impacts{ct: 0.25, dp: 0.0}},
		},
	},
	{
		ID:               "Q_CT_02",
		Scenario:         "You're planning a trip.",
		DimensionTargets: dims{ct},
		Options: []Option{
			{Label: "I like having a detailed itinerary", Impacts: impacts{ct: 0.25}},
			{Label: "I plan the basics and leave room for spontaneity", Impacts: impacts{ct: 0.0}},
			{Label: "I prefer to figure things out as I go", Impacts: impacts{ct: -0.25}},
		},
	},
	{
		ID:               "Q_CT_03",
		Scenario:         "Someone suggests trying a completely new restaurant last minute.",
		DimensionTargets: dims{ct, eo},
		Options: []Option{
			{Label: "I'm excited to try something new", Impacts: impacts{ct: -0.2, eo: 0.1}},
			{Label: "I'm open to it if the reviews look good", Impacts: impacts{ct: 0.0, eo: 0.0}},
			{Label: "I'd rather go somewhere I know I like", Impacts: impacts{ct: 0.2, eo: -0.1}},
		},
	},
	{
		ID:               "Q_CT_04",
		Scenario:         "Your morning routine is interrupted by something unexpected.",
		DimensionTargets: dims{ct, er},
		Options: []Option{
			{Label: "I adapt quickly and don't let it affect my day", Impacts: impacts{ct: -0.15, er: 0.15}},
			{Label: "I feel a bit off but manage", Impacts: impacts{ct: 0.1, er: 0.0}},
			{Label: "It throws off my whole day", Impacts: impacts{ct: 0.2, er: -0.2}},
		},
	},

	// ── Conflict posture ───────────────────────────────────────────────
	{
		ID:               "Q_CP_01",
		Scenario:         "You disagree with a decision made by your team.",
		DimensionTargets: dims{cp, cs},
		Options: []Option{
			{Label: "I voice my concerns and suggest alternatives", Impacts: impacts{cp: 0.25, cs: 0.15}},
			{Label: "I share my view but go along with the group", Impacts: impacts{cp: 0.0, cs: 0.0}},
			{Label: "I keep my disagreement to myself", Impacts: impacts{cp: -0.2, cs: -0.15}},
		},
	},
	{
		ID:               "Q_CP_02",
		Scenario:         "Someone makes a comment that bothers you.",
		DimensionTargets: dims{cp, er},
		Options: []Option{
			{Label: "I address it calmly and explain how I feel", Impacts: impacts{cp: 0.2, er: 0.15}},
			{Label: "I let it pass but might bring it up later", Impacts: impacts{cp: -0.1, er: 0.0}},
			{Label: "I try to forget about it to avoid tension", Impacts: impacts{cp: -0.25, er: -0.1}},
		},
	},
	{
		ID:               "Q_CP_03",
		Scenario:         "Someone is consistently late to meetups.",
		DimensionTargets: dims{cp},
		Options: []Option{
			{Label: "I mention it directly and ask if we can adjust", Impacts: impacts{cp: 0.25}},
			{Label: "I hint at it or plan differently without saying", Impacts: impacts{cp: -0.1}},
			{Label: "I don't say anything and just accept it", Impacts: impacts{cp: -0.25}},
		},
	},
	{
		ID:               "Q_CP_04",
		Scenario:         "A recurring issue keeps coming up in a relationship.",
		DimensionTargets: dims{cp, ea},
		Options: []Option{
			{Label: "I initiate a conversation to address it head-on", Impacts: impacts{cp: 0.2, ea: 0.15}},
			{Label: "I wait for the right moment to bring it up", Impacts: impacts{cp: 0.0, ea: 0.0}},
			{Label: "I hope it resolves on its own", Impacts: impacts{cp: -0.25, ea: -0.15}},
		},
	},

	// ── Energy orientation ─────────────────────────────────────────────
	{
		ID:               "Q_EO_01",
		Scenario:         "After a busy week, you finally have a free evening.",
		DimensionTargets: dims{eo},
		Options: []Option{
			{Label: "I reach out to friends to do something social", Impacts: impacts{eo: 0.25}},
			{Label: "I might meet one person for a quiet catch-up", Impacts: impacts{eo: 0.0}},
			{Label: "I prefer to spend the evening alone recharging", Impacts: impacts{eo: -0.25}},
		},
	},
	{
		ID:               "Q_EO_02",
		Scenario:         "You're at a gathering where you only know a few people.",
		DimensionTargets: dims{eo, ea},
		Options: []Option{
			{Label: "I enjoy meeting new people and starting conversations", Impacts: impacts{eo: 0.25, ea: 0.1}},
			{Label: "I stick with who I know but am open if approached", Impacts: impacts{eo: 0.0, ea: 0.0}},
			{Label: "I find it draining and look forward to leaving", Impacts: impacts{eo: -0.2, ea: -0.1}},
		},
	},
	{
		ID:               "Q_EO_03",
		Scenario:         "You have to work on a project.",
		DimensionTargets: dims{eo, cs},
		Options: []Option{
			{Label: "I prefer collaborating with others throughout", Impacts: impacts{eo: 0.2, cs: 0.1}},
			{Label: "I like working alone but checking in with others", Impacts: impacts{eo: 0.0, cs: 0.0}},
			{Label: "I do my best work alone with minimal interruption", Impacts: impacts{eo: -0.2, cs: -0.1}},
		},
	},
	{
		ID:               "Q_EO_04",
		Scenario:         "You have three social events in one weekend.",
		DimensionTargets: dims{eo, ct},
		Options: []Option{
			{Label: "I look forward to a packed social weekend", Impacts: impacts{eo: 0.25, ct: -0.1}},
			{Label: "I'll go but will need some downtime between", Impacts: impacts{eo: 0.0, ct: 0.1}},
			{Label: "I'd probably decline one or two to avoid burnout", Impacts: impacts{eo: -0.2, ct: 0.15}},
		},
	},

	// ── Decision pace ──────────────────────────────────────────────────
	{
		ID:               "Q_DP_01",
		Scenario:         "You need to make an important decision with limited information.",
		DimensionTargets: dims{dp, er},
		Options: []Option{
			{Label: "I trust my gut and make a call", Impacts: impacts{dp: 0.25, er: 0.1}},
			{Label: "I gather what I can quickly and decide", Impacts: impacts{dp: 0.1, er: 0.0}},
			{Label: "I delay until I have more information", Impacts: impacts{dp: -0.25, er: -0.1}},
		},
	},
	{
		ID:               "Q_DP_02",
		Scenario:         "You're choosing between two equally good options.",
		DimensionTargets: dims{dp},
		Options: []Option{
			{Label: "I pick one quickly and don't look back", Impacts: impacts{dp: 0.25}},
			{Label: "I take a bit of time but commit once I decide", Impacts: impacts{dp: 0.0}},
			{Label: "I go back and forth before finally choosing", Impacts: impacts{dp: -0.25}},
		},
	},
	{
		ID:               "Q_DP_03",
		Scenario:         "Someone asks for your opinion on something right now.",
		DimensionTargets: dims{dp, cs},
		Options: []Option{
			{Label: "I share my initial thoughts right away", Impacts: impacts{dp: 0.2, cs: 0.15}},
			{Label: "I give a quick answer but note it might change", Impacts: impacts{dp: 0.1, cs: 0.0}},
			{Label: "I prefer to think it over before responding", Impacts: impacts{dp: -0.2, cs: -0.1}},
		},
	},
	{
		ID:               "Q_DP_04",
		Scenario:         "A friend asks if you want to join them tomorrow for an activity.",
		DimensionTargets: dims{dp, eo, ct},
		Options: []Option{
			{Label: "I say yes or no right away based on how I feel", Impacts: impacts{dp: 0.2, eo: 0.05, ct: -0.1}},
			{Label: "I check my schedule and get back to them soon", Impacts: impacts{dp: 0.0, eo: 0.0, ct: 0.1}},
			{Label: "I need time to think about whether I have the energy", Impacts: impacts{dp: -0.2, eo: -0.15, ct: 0.0}},
		},
	},

	// ── Cross-dimensional ──────────────────────────────────────────────
	{
		ID:               "Q_MX_01",
		Scenario:         "You receive an invitation to an event happening tonight.",
		DimensionTargets: dims{ct, eo, dp},
		Options: []Option{
			{Label: "I love spontaneous plans and go for it", Impacts: impacts{ct: -0.2, eo: 0.2, dp: 0.2}},
			{Label: "Depends on what I have going on", Impacts: impacts{ct: 0.0, eo: 0.0, dp: 0.0}},
			{Label: "I prefer more notice before committing", Impacts: impacts{ct: 0.2, eo: -0.1, dp: -0.15}},
		},
	},
	{
		ID:               "Q_MX_02",
		Scenario:         "Someone shares a personal struggle with you unexpectedly.",
		DimensionTargets: dims{ea, er, cs},
		Options: []Option{
			{Label: "I listen fully and offer emotional support", Impacts: impacts{ea: 0.2, er: 0.1, cs: 0.1}},
			{Label: "I try to help by offering advice or solutions", Impacts: impacts{ea: 0.0, er: 0.0, cs: 0.15}},
			{Label: "I feel unsure how to respond", Impacts: impacts{ea: -0.15, er: -0.1, cs: -0.15}},
		},
	},
	{
		ID:               "Q_MX_03",
		Scenario:         "You strongly disagree with how something is being handled.",
		DimensionTargets: dims{cp, cs, er},
		Options: []Option{
			{Label: "I express my concerns clearly and directly", Impacts: impacts{cp: 0.2, cs: 0.2, er: 0.1}},
			{Label: "I find a diplomatic way to share my view", Impacts: impacts{cp: 0.0, cs: 0.0, er: 0.1}},
			{Label: "I keep it to myself to avoid rocking the boat", Impacts: impacts{cp: -0.25, cs: -0.2, er: -0.05}},
		},
	},
}
