package sportclass

// College football schools, FBS plus prominent FCS programs. Most power
// conference schools also appear in the basketball roster; membership in
// exactly one list is what lets Infer short-circuit without heuristics.
var collegeFootballSchools = []string{
	"AIR FORCE",
	"ALABAMA",
	"APPALACHIAN STATE",
	"ARIZONA",
	"ARIZONA STATE",
	"ARKANSAS",
	"ARMY",
	"AUBURN",
	"BAYLOR",
	"BOISE STATE",
	"BOSTON COLLEGE",
	"BYU",
	"CALIFORNIA",
	"CLEMSON",
	"COASTAL CAROLINA",
	"COLORADO",
	"COLORADO STATE",
	"DELAWARE",
	"DUKE",
	"EASTERN WASHINGTON",
	"FLORIDA",
	"FLORIDA STATE",
	"FRESNO STATE",
	"FURMAN",
	"GEORGIA",
	"GEORGIA TECH",
	"HOLY CROSS",
	"HOUSTON",
	"IDAHO",
	"ILLINOIS",
	"ILLINOIS STATE",
	"INDIANA",
	"IOWA",
	"IOWA STATE",
	"JAMES MADISON",
	"KANSAS",
	"KANSAS STATE",
	"KENTUCKY",
	"LIBERTY",
	"LOUISVILLE",
	"LSU",
	"MARSHALL",
	"MARYLAND",
	"MEMPHIS",
	"MERCER",
	"MIAMI",
	"MICHIGAN",
	"MICHIGAN STATE",
	"MINNESOTA",
	"MISSISSIPPI STATE",
	"MISSOURI",
	"MONTANA",
	"MONTANA STATE",
	"NAVY",
	"NC STATE",
	"NEBRASKA",
	"NORTH CAROLINA",
	"NORTH DAKOTA STATE",
	"NORTHERN IOWA",
	"NORTHWESTERN",
	"NOTRE DAME",
	"OHIO",
	"OHIO STATE",
	"OKLAHOMA",
	"OKLAHOMA STATE",
	"OLE MISS",
	"OREGON",
	"OREGON STATE",
	"PENN STATE",
	"PITTSBURGH",
	"PURDUE",
	"RICHMOND",
	"RUTGERS",
	"SACRAMENTO STATE",
	"SAM HOUSTON",
	"SAN DIEGO STATE",
	"SMU",
	"SOUTH CAROLINA",
	"SOUTH DAKOTA STATE",
	"SOUTH FLORIDA",
	"STANFORD",
	"SYRACUSE",
	"TCU",
	"TEMPLE",
	"TENNESSEE",
	"TEXAS",
	"TEXAS A&M",
	"TEXAS TECH",
	"TOLEDO",
	"TROY",
	"TULANE",
	"TULSA",
	"UCF",
	"UCLA",
	"UNLV",
	"USC",
	"UTAH",
	"VANDERBILT",
	"VILLANOVA",
	"VIRGINIA",
	"VIRGINIA TECH",
	"WAKE FOREST",
	"WASHINGTON",
	"WASHINGTON STATE",
	"WEBER STATE",
	"WEST VIRGINIA",
	"WISCONSIN",
	"WYOMING",
	"YOUNGSTOWN STATE",
}

// College basketball schools. Overlaps the football roster for
// dual-sport schools; the exclusive entries are hoops-first programs.
var collegeBasketballSchools = []string{
	"ALABAMA",
	"ARIZONA",
	"ARIZONA STATE",
	"ARKANSAS",
	"AUBURN",
	"BAYLOR",
	"BOISE STATE",
	"BOSTON COLLEGE",
	"BRADLEY",
	"BUTLER",
	"BYU",
	"CALIFORNIA",
	"CHARLESTON",
	"CLEMSON",
	"COLORADO",
	"COLORADO STATE",
	"CREIGHTON",
	"DAVIDSON",
	"DAYTON",
	"DEPAUL",
	"DRAKE",
	"DUKE",
	"FLORIDA",
	"FLORIDA ATLANTIC",
	"FLORIDA STATE",
	"GEORGE MASON",
	"GEORGE WASHINGTON",
	"GEORGETOWN",
	"GEORGIA",
	"GEORGIA TECH",
	"GONZAGA",
	"GRAND CANYON",
	"HARVARD",
	"HOFSTRA",
	"HOUSTON",
	"ILLINOIS",
	"INDIANA",
	"INDIANA STATE",
	"IONA",
	"IOWA",
	"IOWA STATE",
	"JAMES MADISON",
	"KANSAS",
	"KANSAS STATE",
	"KENTUCKY",
	"LOUISVILLE",
	"LOYOLA CHICAGO",
	"LSU",
	"MARQUETTE",
	"MARYLAND",
	"MEMPHIS",
	"MIAMI",
	"MICHIGAN",
	"MICHIGAN STATE",
	"MINNESOTA",
	"MISSISSIPPI STATE",
	"MISSOURI",
	"MURRAY STATE",
	"NC STATE",
	"NEBRASKA",
	"NEVADA",
	"NORTH CAROLINA",
	"NORTHWESTERN",
	"NOTRE DAME",
	"OHIO STATE",
	"OKLAHOMA",
	"OKLAHOMA STATE",
	"OLE MISS",
	"OREGON",
	"PENN STATE",
	"PITTSBURGH",
	"PRINCETON",
	"PROVIDENCE",
	"PURDUE",
	"RHODE ISLAND",
	"RUTGERS",
	"SAINT LOUIS",
	"SAINT MARY'S",
	"SAN DIEGO STATE",
	"SANTA CLARA",
	"SETON HALL",
	"SMU",
	"SOUTH CAROLINA",
	"ST. BONAVENTURE",
	"ST. JOHN'S",
	"STANFORD",
	"SYRACUSE",
	"TCU",
	"TENNESSEE",
	"TEXAS",
	"TEXAS A&M",
	"TEXAS TECH",
	"UCF",
	"UCLA",
	"UCONN",
	"USC",
	"UTAH",
	"VANDERBILT",
	"VCU",
	"VERMONT",
	"VILLANOVA",
	"VIRGINIA",
	"VIRGINIA TECH",
	"WAKE FOREST",
	"WASHINGTON",
	"WEST VIRGINIA",
	"WICHITA STATE",
	"WISCONSIN",
	"XAVIER",
	"YALE",
}
