package taxonomy

import "fmt"

// Default returns the compiled-in taxonomy of the naturalisation office.
// Every call returns a fresh value.
func Default() *Taxonomy {
	return &Taxonomy{
		Persons: defaultPersons(),
		Processes: []Process{
			{
				Name: "001_Hauptverfahren",
				Documents: []Document{
					{Name: "AAA_Identitat", Descriptions: []string{
						"National-Pass",
						"Geburtsurkunde",
						"Staatsangehörigkeitsnachweis",
						"Namensänderungsurkunde",
						MiscSentinel,
					}},
					{Name: "BBB_Aufenthaltstitel", Descriptions: []string{
						"EAT",
						"Reiseausweis für Ausländer",
						"Niederlassungserlaubnis",
						"Blaukarte EU",
						MiscSentinel,
					}},
					{Name: "CCC_Wirtschaftliche-Voraussetzung", Descriptions: []string{
						"Arbeitsvertrag",
						"Gehaltsabrechnung(en)",
						"Ausbildungsvertrag",
						"Mietvertrag",
						"Jobcenter-Bescheid",
						"BAföG-Bescheid",
						"Steuerbescheid",
						MiscSentinel,
					}},
					{Name: "DDD_Unbescholtenheit", Descriptions: []string{
						"Polizeiliches Führungszeugnis",
						"Auszug aus dem Bundeszentralregister",
						"Verfassungschutz Anfrage",
						MiscSentinel,
					}},
					{Name: "EEE_Sprachkenntnis", Descriptions: []string{
						"Sprachzertifikat-B1",
						"Sprachzertifikat-B2",
						"Sprachzertifikat-C1",
						"Schulzeugnisse",
						"Schulabschluss",
						"Nachweis über Teilnahme an Integrationskursen",
						MiscSentinel,
					}},
					{Name: "FFF_Kenntnis-Leben-in-Deutschland", Descriptions: []string{
						"Einbürgerungstest-Zertifikat",
						"Relevante-Abschluss",
						MiscSentinel,
					}},
					{Name: "GGG_Bekenntnis-zur-Freiheitlich-Demokratischen-Grundordnung", Descriptions: []string{
						"Erklärung über Loyalität zum Grundgesetz",
						"Persönliches Anschreiben",
						MiscSentinel,
					}},
				},
			},
			{
				Name: "002_Entscheidung",
				Documents: []Document{
					{Name: "AAA_Einbürgerungsurkunde", Descriptions: []string{
						"Urkundenvorlage",
						"Entwurfsformular",
						MiscSentinel,
					}},
					{Name: "BBB_Bescheid", Descriptions: []string{
						"Einbürgerungsbescheid",
						"Ablehnungsbescheid",
						MiscSentinel,
					}},
					{Name: "CCC_Aktennotiz", Descriptions: []string{
						"Vermerk zur Entscheidungsfindung",
						"Interne Kommunikation",
						MiscSentinel,
					}},
					{Name: "DDD_Vermerk", Descriptions: []string{
						"Aktennotiz über fehlende Unterlagen",
						"Beratungsvermerk",
						MiscSentinel,
					}},
					{Name: "EEE_Revision", Descriptions: []string{
						"Revisionsantrag",
						"Widerspruchsschreiben",
						MiscSentinel,
					}},
				},
			},
			{
				Name: "003_Schriftverkehr",
				Documents: []Document{
					{Name: "AAA_Briefwechsel", Descriptions: []string{
						"Schreiben an den Antragsteller",
						"Antwortschreiben",
						MiscSentinel,
					}},
					{Name: "BBB_Mitteilung", Descriptions: []string{
						"Mitteilung über den Verfahrensstand",
						"Zwischenbescheid",
						MiscSentinel,
					}},
					{Name: "CCC_Aufforderung-zur-Nachreichung", Descriptions: []string{
						"Aufforderung zur Vorlage fehlender Unterlagen",
						MiscSentinel,
					}},
					{Name: "DDD_Eingangsbestätigung", Descriptions: []string{
						"Eingangsbestätigung für Antragsunterlagen",
						MiscSentinel,
					}},
				},
			},
		},
	}
}

func defaultPersons() []string {
	persons := []string{"Ast1", "Ast2"}
	for i := 1; i <= 10; i++ {
		persons = append(persons, fmt.Sprintf("Kind%d", i))
	}
	return persons
}
