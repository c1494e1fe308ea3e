package sportclass

// Cues that settle a dual-sport college school without looking at the
// posted total or the calendar.
var collegeBasketballCues = []string{
	"MARCH MADNESS",
	"NCAA TOURNAMENT",
	"FINAL FOUR",
	"ELITE 8",
	"ELITE EIGHT",
	"SWEET 16",
	"SWEET SIXTEEN",
	"FIRST FOUR",
	"BIG DANCE",
}

var collegeFootballCues = []string{
	"BOWL",
	"CFP",
	"COLLEGE FOOTBALL PLAYOFF",
	"HEISMAN",
	"ROSE BOWL",
	"SUGAR BOWL",
	"ORANGE BOWL",
}

// keywordSport triggers a non-team sport off any of a fixed cue set
type keywordSport struct {
	tag  string
	cues []string
}

// Checked in order after every gazetteer pass has missed
var keywordSports = []keywordSport{
	{tag: SportUFC, cues: []string{
		"UFC", "MMA", "BELLATOR", "FIGHT NIGHT", "BOXING", "HEAVYWEIGHT",
		"TITLE FIGHT", "MCGREGOR", "CANELO",
	}},
	{tag: SportTennis, cues: []string{
		"ATP", "WTA", "WIMBLEDON", "US OPEN", "ROLAND GARROS", "FRENCH OPEN",
		"AUSTRALIAN OPEN", "DJOKOVIC", "ALCARAZ", "MEDVEDEV",
	}},
	{tag: SportGolf, cues: []string{
		"PGA", "LIV GOLF", "MASTERS", "RYDER CUP", "FEDEX CUP", "GOLF",
		"SCHEFFLER", "MCILROY", "DECHAMBEAU",
	}},
	{tag: SportSoccer, cues: []string{
		"FC", "PREMIER LEAGUE", "LA LIGA", "SERIE A", "BUNDESLIGA",
		"CHAMPIONS LEAGUE", "EUROPA LEAGUE", "MLS", "UEFA", "ARSENAL",
		"LIVERPOOL", "CHELSEA", "MANCHESTER", "REAL MADRID", "BARCELONA",
		"MESSI",
	}},
	{tag: SportNASCAR, cues: []string{
		"NASCAR", "F1", "FORMULA 1", "GRAND PRIX", "DAYTONA", "TALLADEGA",
		"INDYCAR", "INDY 500", "VERSTAPPEN",
	}},
}
