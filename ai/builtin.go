package ai

import (
	"fmt"
	"sort"
)

type row struct {
	name     string
	variable bool
	length   int
}

var twoDigitRows = map[string]row{
	"00": {"SSCC", false, 18},
	"01": {"GTIN", false, 14},
	"02": {"CONTENT", false, 14},
	"10": {"BATCH/LOT", true, 20},
	"11": {"PROD DATE", false, 6},
	"12": {"DUE DATE", false, 6},
	"13": {"PACK DATE", false, 6},
	"15": {"BEST BEFORE", false, 6},
	"16": {"SELL BY", false, 6},
	"17": {"EXPIRY", false, 6},
	"20": {"VARIANT", false, 2},
	"21": {"SERIAL", true, 20},
	"22": {"CPV", true, 20},
	"30": {"VAR. COUNT", true, 8},
	"37": {"COUNT", true, 8},
	"90": {"INTERNAL", true, 30},
}

var threeDigitRows = map[string]row{
	"235": {"TPX", true, 28},
	"240": {"ADDITIONAL ID", true, 30},
	"241": {"CUST. PART No.", true, 30},
	"242": {"MTO VARIANT", true, 6},
	"243": {"PCN", true, 20},
	"250": {"SECONDARY SERIAL", true, 30},
	"251": {"REF. TO SOURCE", true, 30},
	"253": {"GDTI", true, 30},
	"254": {"GLN EXTENSION COMPONENT", true, 20},
	"255": {"GCN", true, 25},
	"400": {"ORDER NUMBER", true, 30},
	"401": {"GINC", true, 30},
	"402": {"GSIN", false, 17},
	"403": {"ROUTE", true, 30},
	"410": {"SHIP TO LOC", false, 13},
	"411": {"BILL TO", false, 13},
	"412": {"PURCHASE FROM", false, 13},
	"413": {"SHIP FOR LOC", false, 13},
	"414": {"LOC No.", false, 13},
	"415": {"PAY TO", false, 13},
	"416": {"PROD/SERV LOC", false, 13},
	"417": {"PARTY", false, 13},
	"420": {"SHIP TO POST", true, 20},
	"421": {"SHIP TO POST ISO", true, 15},
	"422": {"ORIGIN", false, 3},
	"423": {"COUNTRY - INITIAL PROCESS.", true, 15},
	"424": {"COUNTRY - PROCESS.", false, 3},
	"425": {"COUNTRY - DISASSEMBLY", true, 15},
	"426": {"COUNTRY - FULL PROCESS", false, 3},
	"427": {"ORIGIN SUBDIVISION", true, 3},
	"710": {"NHRN PZN", true, 20},
	"711": {"NHRN CIP", true, 20},
	"712": {"NHRN CN", true, 20},
	"713": {"NHRN DRN", true, 20},
	"714": {"NHRN AIM", true, 20},
	"715": {"NHRN NDC", true, 20},
}

// Decimal families: the fourth digit carries the decimal point position.
var templateRows = map[string]row{
	"390": {"AMOUNT", true, 15},
	"391": {"AMOUNT ISO", true, 18},
	"392": {"PRICE", true, 15},
	"393": {"PRICE ISO", true, 18},
	"394": {"PRCNT OFF", false, 4},
	"395": {"PRICE/UoM", false, 6},
}

var measureNames = map[int]string{
	310: "NET WEIGHT (kg)", 311: "LENGTH (m)", 312: "WIDTH (m)", 313: "HEIGHT (m)",
	314: "AREA (m2)", 315: "NET VOLUME (l)", 316: "NET VOLUME (m3)",
	320: "NET WEIGHT (lb)", 321: "LENGTH (in)", 322: "LENGTH (ft)", 323: "LENGTH (yd)",
	324: "WIDTH (in)", 325: "WIDTH (ft)", 326: "WIDTH (yd)", 327: "HEIGHT (in)",
	328: "HEIGHT (ft)", 329: "HEIGHT (yd)", 330: "GROSS WEIGHT (kg)", 331: "LENGTH (m), log",
	332: "WIDTH (m), log", 333: "HEIGHT (m), log", 334: "AREA (m2), log", 335: "VOLUME (l), log",
	336: "VOLUME (m3), log", 337: "KG PER m2",
	340: "GROSS WEIGHT (lb)", 341: "LENGTH (in), log", 342: "LENGTH (ft), log",
	343: "LENGTH (yd), log", 344: "WIDTH (in), log", 345: "WIDTH (ft), log",
	346: "WIDTH (yd), log", 347: "HEIGHT (in), log", 348: "HEIGHT (ft), log",
	349: "HEIGHT (yd), log", 350: "AREA (in2)", 351: "AREA (ft2)", 352: "AREA (yd2)",
	353: "AREA (in2), log", 354: "AREA (ft2), log", 355: "AREA (yd2), log",
	356: "NET WEIGHT (t oz)", 357: "NET VOLUME (oz)",
	360: "NET VOLUME (qt)", 361: "NET VOLUME (gal.)", 362: "VOLUME (qt), log",
	363: "VOLUME (gal.), log", 364: "VOLUME (in3)", 365: "VOLUME (ft3)", 366: "VOLUME (yd3)",
	367: "VOLUME (in3), log", 368: "VOLUME (ft3), log", 369: "VOLUME (yd3), log",
}

var fourDigitRows = map[string]row{
	"4300": {"SHIP TO COMP", true, 35}, "4301": {"SHIP TO NAME", true, 35},
	"4302": {"SHIP TO ADD1", true, 70}, "4303": {"SHIP TO ADD2", true, 70},
	"4304": {"SHIP TO SUB", true, 70}, "4305": {"SHIP TO LOCALITY", true, 70},
	"4306": {"SHIP TO REG", true, 70}, "4307": {"SHIP TO COUNTRY", false, 2},
	"4308": {"SHIP TO PHONE", true, 30}, "4309": {"SHIP TO GEO", false, 20},
	"4310": {"RTN TO COMP", true, 35}, "4311": {"RTN TO NAME", true, 35},
	"4312": {"RTN TO ADD1", true, 70}, "4313": {"RTN TO ADD2", true, 70},
	"4314": {"RTN TO SUB", true, 70}, "4315": {"RTN TO LOC", true, 70},
	"4316": {"RTN TO REG", true, 70}, "4317": {"RTN TO COUNTRY", false, 2},
	"4318": {"RTN TO POST", true, 20}, "4319": {"RTN TO PHONE", true, 30},
	"4320": {"SRV DESCRIPTION", true, 35}, "4321": {"DANGEROUS GOODS", false, 1},
	"4322": {"AUTH LEAVE", false, 1}, "4323": {"SIG REQUIRED", false, 1},
	"4324": {"NBEF DEL DT", false, 10}, "4325": {"NAFT DEL DT", false, 10},
	"4326": {"REL DATE", false, 6},
	"7001": {"NSN", false, 13}, "7002": {"MEAT CUT", true, 30},
	"7003": {"EXPIRY TIME", false, 10}, "7004": {"ACTIVE POTENCY", true, 4},
	"7005": {"CATCH AREA", true, 12}, "7006": {"FIRST FREEZE DATE", false, 6},
	"7007": {"HARVEST DATE", true, 12}, "7008": {"AQUATIC SPECIES", true, 3},
	"7009": {"FISHING GEAR TYPE", true, 10}, "7010": {"PROD METHOD", true, 2},
	"7011": {"TEST BY DATE", true, 10},
	"7020": {"REFURB LOT", true, 20}, "7021": {"FUNC STAT", true, 20},
	"7022": {"REV STAT", true, 20}, "7023": {"GIAI - ASSEMBLY", true, 30},
	"7040": {"UIC+EXT", false, 4}, "7240": {"PROTOCOL", true, 20},
	"8001": {"DIMENSIONS", false, 14}, "8002": {"CMT No.", true, 20},
	"8003": {"GRAI", true, 30}, "8004": {"GIAI", true, 30},
	"8005": {"PRICE PER UNIT", false, 6}, "8006": {"ITIP", false, 18},
	"8007": {"IBAN", true, 34}, "8008": {"PROD TIME", true, 12},
	"8009": {"OPTSEN", true, 50}, "8010": {"CPID", true, 30},
	"8011": {"CPID SERIAL", true, 12}, "8012": {"VERSION", true, 20},
	"8013": {"GMN", true, 25}, "8017": {"GSRN - PROVIDER", false, 18},
	"8018": {"GSRN - RECIPIENT", false, 18}, "8019": {"SRIN", true, 10},
	"8020": {"REF No.", true, 25}, "8026": {"ITIP CONTENT", false, 18},
	"8100": {"COUPON EXT 8100", false, 6}, "8101": {"COUPON EXT 8101", false, 10},
	"8102": {"COUPON EXT 8102", false, 2},
	"8110": {"COUPON", true, 70}, "8111": {"POINTS", false, 4},
	"8112": {"PAPERLESS COUPON", true, 70}, "8200": {"PRODUCT URL", true, 70},
}

var builtin *Registry

func init() {
	rows := make(map[string]row, 256)
	for code, r := range twoDigitRows {
		rows[code] = r
	}
	for i := 91; i <= 99; i++ {
		rows[fmt.Sprintf("%d", i)] = row{fmt.Sprintf("INTERNAL %d", i), true, 90}
	}
	for code, r := range threeDigitRows {
		rows[code] = r
	}
	for prefix, name := range measureNames {
		rows[fmt.Sprintf("%dy", prefix)] = row{name, false, 6}
	}
	for prefix, r := range templateRows {
		rows[prefix+"y"] = r
	}
	for code, r := range fourDigitRows {
		rows[code] = r
	}
	// 703n and 723n number a processor or certificate; the digit is not a
	// decimal position, so each code is registered on its own.
	for i := 0; i <= 9; i++ {
		rows[fmt.Sprintf("703%d", i)] = row{fmt.Sprintf("PROCESSOR # %d", i), true, 30}
		rows[fmt.Sprintf("723%d", i)] = row{fmt.Sprintf("CERT # %d", i), true, 30}
	}

	codes := make([]string, 0, len(rows))
	for c := range rows {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	defs := make([]Definition, 0, len(codes))
	for _, c := range codes {
		defs = append(defs, rows[c].definition(c))
	}

	var err error
	builtin, err = New("builtin", defs)
	if err != nil {
		panic(err)
	}
}

func (r row) definition(code string) Definition {
	return Definition{Code: code, Name: r.name, MaxLength: r.length, Fixed: !r.variable}
}

// Builtin returns the standard AI table compiled into the binary.
func Builtin() *Registry {
	return builtin
}

// Fallback returns the minimal table used when no table could be loaded at
// all: GTIN, batch, serial and internal data.
func Fallback() *Registry {
	r, err := New("fallback", []Definition{
		twoDigitRows["01"].definition("01"),
		twoDigitRows["10"].definition("10"),
		twoDigitRows["21"].definition("21"),
		twoDigitRows["90"].definition("90"),
	})
	if err != nil {
		panic(err)
	}
	return r
}
