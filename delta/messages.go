package delta

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English texts.
const (
	msgMissingType                 = "The type %s cannot be found."
	msgInvalidGenerations          = "%s has %d generations, but its type %s does not change over time."
	msgMissingPropertyValue        = "%s: the %s of property %s is missing."
	msgMissingPropertyValueFrom    = "%s: the %s of property %s is missing; the value stored in %s is taken over."
	msgValueWithoutProperty        = "%s: the %s %s has no corresponding property."
	msgPropertyTypeMismatch        = "%s: property %s is stored as %s, but the type declares %s."
	msgValueSetMismatch            = "%s: the value set of %s is of kind %s, but the attribute declares a value set of kind %s."
	msgValueHolderToMulti          = "%s: attribute %s is multi-valued, but a single value is stored."
	msgValueHolderToSingle         = "%s: attribute %s is single-valued, but multiple values are stored."
	msgMultilingualToInternational = "%s: attribute %s is multilingual, but plain text is stored."
	msgMultilingualToPlain         = "%s: attribute %s is not multilingual, but multilingual text is stored."
	msgDatatypeMismatch            = "%s: the value %s of attribute %s is not a valid %s."
	msgHiddenAttributeMismatch     = "%s: hidden attribute %s stores %s instead of its default %s."
	msgLinkWithoutAssociation      = "%s: the link to %s refers to association %s, which no longer exists."
	msgLinkToGenerations           = "%s: association %s changes over time; its links are moved into the generations."
	msgLinkToComponent             = "%s: association %s does not change over time; the links of the latest generation are moved to the component."
	msgMissingTemplateLink         = "%s: the link to %s via %s defined in template %s is missing."
	msgRemovedTemplateLink         = "%s: the inherited link to %s via %s no longer exists in template %s."
)

var german = map[string]string{
	msgMissingType:                 "Der Typ %s kann nicht gefunden werden.",
	msgInvalidGenerations:          "%s hat %d Generationen, aber der Typ %s ist nicht änderbar im Zeitverlauf.",
	msgMissingPropertyValue:        "%s: %s der Eigenschaft %s fehlt.",
	msgMissingPropertyValueFrom:    "%s: %s der Eigenschaft %s fehlt; der Wert aus %s wird übernommen.",
	msgValueWithoutProperty:        "%s: %s %s hat keine zugehörige Eigenschaft.",
	msgPropertyTypeMismatch:        "%s: die Eigenschaft %s ist als %s gespeichert, der Typ definiert aber %s.",
	msgValueSetMismatch:            "%s: der Wertebereich von %s ist vom Typ %s, das Attribut definiert aber einen Wertebereich vom Typ %s.",
	msgValueHolderToMulti:          "%s: das Attribut %s ist mehrwertig, es ist aber ein einzelner Wert gespeichert.",
	msgValueHolderToSingle:         "%s: das Attribut %s ist einwertig, es sind aber mehrere Werte gespeichert.",
	msgMultilingualToInternational: "%s: das Attribut %s ist mehrsprachig, es ist aber einsprachiger Text gespeichert.",
	msgMultilingualToPlain:         "%s: das Attribut %s ist nicht mehrsprachig, es ist aber mehrsprachiger Text gespeichert.",
	msgDatatypeMismatch:            "%s: der Wert %s des Attributs %s ist kein gültiger Wert vom Typ %s.",
	msgHiddenAttributeMismatch:     "%s: das versteckte Attribut %s speichert %s statt des Vorgabewerts %s.",
	msgLinkWithoutAssociation:      "%s: die Beziehung zu %s verweist auf die nicht mehr existierende Assoziation %s.",
	msgLinkToGenerations:           "%s: die Assoziation %s ist änderbar im Zeitverlauf; ihre Beziehungen werden in die Generationen verschoben.",
	msgLinkToComponent:             "%s: die Assoziation %s ist nicht änderbar im Zeitverlauf; die Beziehungen der letzten Generation werden in den Baustein verschoben.",
	msgMissingTemplateLink:         "%[1]s: die in der Vorlage %[4]s definierte Beziehung zu %[2]s über %[3]s fehlt.",
	msgRemovedTemplateLink:         "%s: die geerbte Beziehung zu %s über %s existiert in der Vorlage %s nicht mehr.",
}

// Catalog holds the entry descriptions in English and German.
var Catalog catalog.Catalog = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, de := range german {
		mustSet(b.SetString(language.English, key, key))
		mustSet(b.SetString(language.German, key, de))
	}
	return b
}

func mustSet(err error) {
	if err != nil {
		panic(fmt.Sprintf("delta: message catalog: %v", err))
	}
}

// NewPrinter returns a printer producing descriptions in the given language.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(Catalog))
}

// Describe returns the English description of e.
func Describe(e Entry) string {
	return e.Description(NewPrinter(language.English))
}
