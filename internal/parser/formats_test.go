package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rickgao/eve-appraisal/internal/model"
)

func TestFormatParsers(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name   string
		parser Parser
		input  string
		want   Result
	}{
		{
			name:   "listing",
			parser: NewListingParser(cat),
			input: "Tritanium\n" +
				"2 Rifter\n" +
				"2x Hobgoblin II\n" +
				"Warrior II x5\n" +
				"Rifter Blueprint (Copy)\n" +
				"not an item\n" +
				"Tritanium\t5",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 1, 0),
					item(587, "Rifter", 2, 0),
					item(2456, "Hobgoblin II", 2, 0),
					item(2486, "Warrior II", 5, 0),
					item(691, "Rifter Blueprint", 1, model.TagBlueprintCopy),
				},
				Matched:  5,
				Residual: []string{"not an item", "Tritanium\t5"},
			},
		},
		{
			name:   "assets",
			parser: NewAssetsParser(cat),
			input: "Tritanium\t1,000\tMineral\tMaterial\t\t10.00 m3\n" +
				"Rifter\t\tFrigate\tShip\n" +
				"Unknown Thing\t5\tWidget\n" +
				"Rifter\tlots\tShip\n" +
				"garbage",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 1000, 0),
					item(587, "Rifter", 1, 0),
				},
				Matched: 3,
				Residual: []string{
					"Unknown Thing\t5\tWidget",
					"Rifter\tlots\tShip",
					"garbage",
				},
			},
		},
		{
			name:   "contract",
			parser: NewContractParser(cat),
			input: "Rifter\t1\tFrigate\tFitted\n" +
				"Rifter Blueprint\t1\tBlueprint\tBlueprint Copy\n" +
				"Tritanium\t5,000\tMineral\n" +
				"Tritanium\t5\t10",
			want: Result{
				Items: []model.ParsedItem{
					item(587, "Rifter", 1, model.TagFitted),
					item(691, "Rifter Blueprint", 1, model.TagBlueprintCopy),
					item(34, "Tritanium", 5000, 0),
				},
				Matched:  3,
				Residual: []string{"Tritanium\t5\t10"},
			},
		},
		{
			name:   "dscan",
			parser: NewDScanParser(cat),
			input: "12345\tSome Pilot's Rifter\tRifter\t1,234 km\n" +
				"Some Pilot's Rifter\tRifter\t-\n" +
				"Hobgoblin II\tHobgoblin II\t12 km\n" +
				"Tritanium\t100\tMineral",
			want: Result{
				Items: []model.ParsedItem{
					item(587, "Rifter", 1, 0),
					item(587, "Rifter", 1, 0),
					item(2456, "Hobgoblin II", 1, 0),
				},
				Matched:  3,
				Residual: []string{"Tritanium\t100\tMineral"},
			},
		},
		{
			name:   "wallet",
			parser: NewWalletParser(cat),
			input: "2013.05.15 14:09\t2\tTritanium\t5.00 ISK\t-10.00 ISK\tSeller\tJita\n" +
				"2013.05.15 14:10\tMarket Transaction\t-10.00 ISK\t1,000.00 ISK\n" +
				"2013.05.15 14:11\t3\tNonexistent\t1.00 ISK\n" +
				"Tritanium\t5",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 2, 0),
				},
				Matched: 3,
				Residual: []string{
					"2013.05.15 14:11\t3\tNonexistent\t1.00 ISK",
					"Tritanium\t5",
				},
			},
		},
		{
			name:   "bill of materials",
			parser: NewBillOfMaterialsParser(cat),
			input: "Mexallon\t5\t5\n" +
				"Item\tYou have\tRequired\n" +
				"Tritanium\t1,000\t2,500\n" +
				"Pyerite\t\t300\n" +
				"Unknown\t1\t1",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 1000, 0),
					item(35, "Pyerite", 300, 0),
				},
				Matched:  4,
				Residual: []string{"Mexallon\t5\t5", "Unknown\t1\t1"},
			},
		},
		{
			name:   "chat",
			parser: NewChatParser(cat),
			input: "---------------------------------------------------------------\n" +
				"  Channel ID:      -123\n" +
				"  Channel Name:    Local\n" +
				"  Listener:        Some Pilot\n" +
				"  Session started: 2014.01.01 11:00:00\n" +
				"---------------------------------------------------------------\n" +
				"[ 2014.01.01 12:00:00 ] Some Pilot > 3x Hobgoblin II\n" +
				"[ 2014.01.01 12:00:05 ] Other Pilot > hello",
			want: Result{
				Items: []model.ParsedItem{
					item(2456, "Hobgoblin II", 3, 0),
				},
				Matched: 8,
			},
		},
		{
			name:   "chat headers alone",
			parser: NewChatParser(cat),
			input:  "Listener: Some Pilot\nTritanium",
			want: Result{
				Residual: []string{"Listener: Some Pilot", "Tritanium"},
			},
		},
		{
			name:   "eft",
			parser: NewEFTParser(cat),
			input: "Tritanium\n" +
				"[Rifter, My Rifter]\n" +
				"Gyrostabilizer II\n" +
				"Gyrostabilizer II /offline\n" +
				"[Empty Med slot]\n" +
				"200mm AutoCannon II, Republic Fleet EMP S\n" +
				"Hobgoblin II x5\n" +
				"Bogus Module",
			want: Result{
				Items: []model.ParsedItem{
					item(587, "Rifter", 1, 0),
					item(519, "Gyrostabilizer II", 1, model.TagFitted),
					item(519, "Gyrostabilizer II", 1, model.TagFitted),
					item(2889, "200mm AutoCannon II", 1, model.TagFitted),
					item(21894, "Republic Fleet EMP S", 1, 0),
					item(2456, "Hobgoblin II", 5, 0),
				},
				Matched:  6,
				Residual: []string{"Tritanium", "Bogus Module"},
			},
		},
		{
			name:   "killmail",
			parser: NewKillmailParser(cat),
			input: "2013.07.09 23:54:00\n" +
				"\n" +
				"Victim: Some Pilot\n" +
				"Corp: Some Corp\n" +
				"Destroyed: Rifter\n" +
				"System: Jita\n" +
				"Security: 0.9\n" +
				"Damage Taken: 1234\n" +
				"\n" +
				"Involved parties:\n" +
				"\n" +
				"Name: Other Pilot (laid the final blow)\n" +
				"Security: 5.0\n" +
				"\n" +
				"Destroyed items:\n" +
				"\n" +
				"Small Shield Extender I\n" +
				"Warrior II, Qty: 3 (Drone Bay)\n" +
				"\n" +
				"Dropped items:\n" +
				"\n" +
				"Gyrostabilizer II\n" +
				"Mystery Box",
			want: Result{
				Items: []model.ParsedItem{
					item(587, "Rifter", 1, model.TagDestroyed),
					item(380, "Small Shield Extender I", 1, model.TagFitted|model.TagDestroyed),
					item(2486, "Warrior II", 3, model.TagDestroyed),
					item(519, "Gyrostabilizer II", 1, model.TagFitted|model.TagDropped),
				},
				Matched:  15,
				Residual: []string{"Mystery Box"},
			},
		},
		{
			name:   "killmail without victim",
			parser: NewKillmailParser(cat),
			input:  "Destroyed items:\nGyrostabilizer II",
			want: Result{
				Residual: []string{"Destroyed items:", "Gyrostabilizer II"},
			},
		},
		{
			name:   "eft ends at foreign line",
			parser: NewEFTParser(cat),
			input: "[Rifter, My Rifter]\n" +
				"Gyrostabilizer II\n" +
				"Hobgoblin II x5\n" +
				"Tritanium\n" +
				"Gyrostabilizer II",
			want: Result{
				Items: []model.ParsedItem{
					item(587, "Rifter", 1, 0),
					item(519, "Gyrostabilizer II", 1, model.TagFitted),
					item(2456, "Hobgoblin II", 5, 0),
				},
				Matched:  3,
				Residual: []string{"Tritanium", "Gyrostabilizer II"},
			},
		},
		{
			name:   "loot history",
			parser: NewLootHistoryParser(cat),
			input: "12:00:00 Some Pilot has looted 5 x Tritanium\n" +
				"12:01:10 Other Pilot has looted 1,000 x Pyerite\n" +
				"12:02:00 Some Pilot has looted 2 x Unobtainium\n" +
				"Tritanium",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 5, 0),
					item(35, "Pyerite", 1000, 0),
				},
				Matched: 3,
				Residual: []string{
					"12:02:00 Some Pilot has looted 2 x Unobtainium",
					"Tritanium",
				},
			},
		},
		{
			name:   "survey scanner",
			parser: NewSurveyScannerParser(cat),
			input: "Pyerite\t12,345\t15 km\n" +
				"Mexallon\t500\t2,500 m\n" +
				"Some Pilot's Rifter\tRifter\t1,234 km\n" +
				"Veldspar\t100\t10 km",
			want: Result{
				Items: []model.ParsedItem{
					item(35, "Pyerite", 12345, 0),
					item(36, "Mexallon", 500, 0),
				},
				Matched: 2,
				Residual: []string{
					"Some Pilot's Rifter\tRifter\t1,234 km",
					"Veldspar\t100\t10 km",
				},
			},
		},
		{
			name:   "pi",
			parser: NewPIParser(cat),
			input: "100\tTritanium\n" +
				"2,000\tPyerite\t20.00 m3\n" +
				"12\tMexallon\t0.01 m3\t0.12 m3\n" +
				"12345\tSome Pilot's Rifter\tRifter\t1,234 km\n" +
				"Tritanium\t100",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 100, 0),
					item(35, "Pyerite", 2000, 0),
					item(36, "Mexallon", 12, 0),
				},
				Matched: 3,
				Residual: []string{
					"12345\tSome Pilot's Rifter\tRifter\t1,234 km",
					"Tritanium\t100",
				},
			},
		},
		{
			name:   "fitting",
			parser: NewFittingParser(cat),
			input: "Gyrostabilizer II\t2\tLow power\n" +
				"200mm AutoCannon II\t1\tHigh power\n" +
				"Hobgoblin II\t5\tDrone Bay\n" +
				"Tritanium\t5,000\tMineral",
			want: Result{
				Items: []model.ParsedItem{
					item(519, "Gyrostabilizer II", 2, model.TagFitted),
					item(2889, "200mm AutoCannon II", 1, model.TagFitted),
					item(2456, "Hobgoblin II", 5, 0),
				},
				Matched:  3,
				Residual: []string{"Tritanium\t5,000\tMineral"},
			},
		},
		{
			name:   "view contents",
			parser: NewViewContentsParser(cat),
			input: "Tritanium\tMineral\tCargo Hold\t100\n" +
				"Gyrostabilizer II\tGyrostabilizer\tLow Slot\t1\n" +
				"Hobgoblin II\tCombat Drone\t5\n" +
				"Tritanium\t100\tMineral",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 100, 0),
					item(519, "Gyrostabilizer II", 1, model.TagFitted),
					item(2456, "Hobgoblin II", 5, 0),
				},
				Matched:  3,
				Residual: []string{"Tritanium\t100\tMineral"},
			},
		},
		{
			name:   "heuristic",
			parser: NewHeuristicParser(cat),
			input: "Tritanium 1000\n" +
				"1\tTritanium\tMineral\t500\n" +
				"500\tfoo\tPyerite\n" +
				"Hobgoblin II is great\n" +
				"nothing here",
			want: Result{
				Items: []model.ParsedItem{
					item(34, "Tritanium", 1000, 0),
					item(34, "Tritanium", 500, 0),
					item(35, "Pyerite", 500, 0),
					item(2456, "Hobgoblin II", 1, 0),
				},
				Matched:  4,
				Residual: []string{"nothing here"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.parser.Parse(splitLines(tt.input))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s Parse() mismatch (-want +got):\n%s", tt.parser.Kind(), diff)
			}
		})
	}
}

func TestHeuristicTokens(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a\tb, \t\tc", []string{"a", "b", "", "c"}},
		{"Cargo Scanner II    2", []string{"Cargo Scanner II", "2"}},
		{"Tritanium, 5", []string{"Tritanium", "5"}},
		{"Tritanium", []string{"Tritanium"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, heuristicTokens(tt.line)); diff != "" {
				t.Errorf("heuristicTokens(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}
