package sportclass

import "strings"

// Sport tags produced by Infer
const (
	SportNFL    = "NFL"
	SportNBA    = "NBA"
	SportMLB    = "MLB"
	SportNHL    = "NHL"
	SportNCAAF  = "NCAAF"
	SportNCAAB  = "NCAAB"
	SportUFC    = "UFC"
	SportTennis = "Tennis"
	SportGolf   = "Golf"
	SportSoccer = "Soccer"
	SportNASCAR = "NASCAR"
	SportOther  = "Other"
)

// NFL full team names
var nflTeams = []string{
	"ARIZONA CARDINALS",
	"ATLANTA FALCONS",
	"BALTIMORE RAVENS",
	"BUFFALO BILLS",
	"CAROLINA PANTHERS",
	"CHICAGO BEARS",
	"CINCINNATI BENGALS",
	"CLEVELAND BROWNS",
	"DALLAS COWBOYS",
	"DENVER BRONCOS",
	"DETROIT LIONS",
	"GREEN BAY PACKERS",
	"HOUSTON TEXANS",
	"INDIANAPOLIS COLTS",
	"JACKSONVILLE JAGUARS",
	"KANSAS CITY CHIEFS",
	"LAS VEGAS RAIDERS",
	"LOS ANGELES CHARGERS",
	"LOS ANGELES RAMS",
	"MIAMI DOLPHINS",
	"MINNESOTA VIKINGS",
	"NEW ENGLAND PATRIOTS",
	"NEW ORLEANS SAINTS",
	"NEW YORK GIANTS",
	"NEW YORK JETS",
	"PHILADELPHIA EAGLES",
	"PITTSBURGH STEELERS",
	"SAN FRANCISCO 49ERS",
	"SEATTLE SEAHAWKS",
	"TAMPA BAY BUCCANEERS",
	"TENNESSEE TITANS",
	"WASHINGTON COMMANDERS",
}

// NBA full team names
var nbaTeams = []string{
	"ATLANTA HAWKS",
	"BOSTON CELTICS",
	"BROOKLYN NETS",
	"CHARLOTTE HORNETS",
	"CHICAGO BULLS",
	"CLEVELAND CAVALIERS",
	"DALLAS MAVERICKS",
	"DENVER NUGGETS",
	"DETROIT PISTONS",
	"GOLDEN STATE WARRIORS",
	"HOUSTON ROCKETS",
	"INDIANA PACERS",
	"LOS ANGELES CLIPPERS",
	"LOS ANGELES LAKERS",
	"MEMPHIS GRIZZLIES",
	"MIAMI HEAT",
	"MILWAUKEE BUCKS",
	"MINNESOTA TIMBERWOLVES",
	"NEW ORLEANS PELICANS",
	"NEW YORK KNICKS",
	"OKLAHOMA CITY THUNDER",
	"ORLANDO MAGIC",
	"PHILADELPHIA 76ERS",
	"PHOENIX SUNS",
	"PORTLAND TRAIL BLAZERS",
	"SACRAMENTO KINGS",
	"SAN ANTONIO SPURS",
	"TORONTO RAPTORS",
	"UTAH JAZZ",
	"WASHINGTON WIZARDS",
}

// MLB full team names
var mlbTeams = []string{
	"ARIZONA DIAMONDBACKS",
	"ATLANTA BRAVES",
	"BALTIMORE ORIOLES",
	"BOSTON RED SOX",
	"CHICAGO CUBS",
	"CHICAGO WHITE SOX",
	"CINCINNATI REDS",
	"CLEVELAND GUARDIANS",
	"COLORADO ROCKIES",
	"DETROIT TIGERS",
	"HOUSTON ASTROS",
	"KANSAS CITY ROYALS",
	"LOS ANGELES ANGELS",
	"LOS ANGELES DODGERS",
	"MIAMI MARLINS",
	"MILWAUKEE BREWERS",
	"MINNESOTA TWINS",
	"NEW YORK METS",
	"NEW YORK YANKEES",
	"OAKLAND ATHLETICS",
	"PHILADELPHIA PHILLIES",
	"PITTSBURGH PIRATES",
	"SAN DIEGO PADRES",
	"SAN FRANCISCO GIANTS",
	"SEATTLE MARINERS",
	"ST. LOUIS CARDINALS",
	"TAMPA BAY RAYS",
	"TEXAS RANGERS",
	"TORONTO BLUE JAYS",
	"WASHINGTON NATIONALS",
}

// NHL full team names
var nhlTeams = []string{
	"ANAHEIM DUCKS",
	"BOSTON BRUINS",
	"BUFFALO SABRES",
	"CALGARY FLAMES",
	"CAROLINA HURRICANES",
	"CHICAGO BLACKHAWKS",
	"COLORADO AVALANCHE",
	"COLUMBUS BLUE JACKETS",
	"DALLAS STARS",
	"DETROIT RED WINGS",
	"EDMONTON OILERS",
	"FLORIDA PANTHERS",
	"LOS ANGELES KINGS",
	"MINNESOTA WILD",
	"MONTREAL CANADIENS",
	"NASHVILLE PREDATORS",
	"NEW JERSEY DEVILS",
	"NEW YORK ISLANDERS",
	"NEW YORK RANGERS",
	"OTTAWA SENATORS",
	"PHILADELPHIA FLYERS",
	"PITTSBURGH PENGUINS",
	"SAN JOSE SHARKS",
	"SEATTLE KRAKEN",
	"ST. LOUIS BLUES",
	"TAMPA BAY LIGHTNING",
	"TORONTO MAPLE LEAFS",
	"UTAH MAMMOTH",
	"VANCOUVER CANUCKS",
	"VEGAS GOLDEN KNIGHTS",
	"WASHINGTON CAPITALS",
	"WINNIPEG JETS",
}

// proLeague couples a sport tag with its gazetteer, in match priority order
type proLeague struct {
	tag       string
	teams     []string
	nicknames []string
}

var proLeagues = []proLeague{
	{tag: SportNFL, teams: nflTeams},
	{tag: SportNBA, teams: nbaTeams},
	{tag: SportMLB, teams: mlbTeams},
	{tag: SportNHL, teams: nhlTeams},
}

func init() {
	// Derive per-league nickname tokens from the trailing word of each
	// full name. Nicknames shared across leagues are resolved by the
	// override table instead and stay out of these lists.
	for i := range proLeagues {
		seen := map[string]bool{}
		for _, team := range proLeagues[i].teams {
			fields := strings.Fields(team)
			nickname := fields[len(fields)-1]
			if seen[nickname] || ambiguousNickname(nickname) {
				continue
			}
			seen[nickname] = true
			proLeagues[i].nicknames = append(proLeagues[i].nicknames, nickname)
		}
	}
}

func ambiguousNickname(nickname string) bool {
	for _, override := range nicknameOverrides {
		if override.nickname == nickname {
			return true
		}
	}
	return false
}

// nicknameOverride resolves a nickname shared across leagues using
// city or state context, falling back to the league the bare nickname
// most commonly means.
type nicknameOverride struct {
	nickname string
	cues     []string
	cueTag   string
	fallback string
}

var nicknameOverrides = []nicknameOverride{
	{nickname: "GIANTS", cues: []string{"SAN FRANCISCO", "SF"}, cueTag: SportMLB, fallback: SportNFL},
	{nickname: "RANGERS", cues: []string{"TEXAS", "TEX"}, cueTag: SportMLB, fallback: SportNHL},
	{nickname: "KINGS", cues: []string{"SACRAMENTO", "SAC"}, cueTag: SportNBA, fallback: SportNHL},
	{nickname: "CARDINALS", cues: []string{"ARIZONA", "ARI"}, cueTag: SportNFL, fallback: SportMLB},
	{nickname: "PANTHERS", cues: []string{"FLORIDA", "FLA"}, cueTag: SportNHL, fallback: SportNFL},
	{nickname: "JETS", cues: []string{"WINNIPEG", "WPG"}, cueTag: SportNHL, fallback: SportNFL},
}
