/*
 * names.go, part of goconformers.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package arrays

type description struct {
	full  string
	units string
}

const (
	hartree   = "Hartree"
	raman4    = "(A**4/AMU)"
	roa5      = "(10**4 A**5/AMU)"
	esuDip    = "10^(-44) esu^2 cm^2"
	esuRot    = "10^(-40) erg*esu*cm/Gauss"
	roaUnits  = "10^4 K"
	angstroms = "Angstrom"
)

var descriptions = map[string]description{
	"filenames":              {"Filenames", ""},
	"charge":                 {"Charge", ""},
	"multiplicity":           {"Multiplicity", ""},
	"zpecorr":                {"Zero-point Correction", hartree},
	"tencorr":                {"Correction to Energy", hartree},
	"entcorr":                {"Correction to Enthalpy", hartree},
	"gibcorr":                {"Correction to Free Energy", hartree},
	"command":                {"Command", ""},
	"stoichiometry":          {"Stoichiometry", ""},
	"version":                {"Version", ""},
	"normal_termination":     {"Normal Termination", ""},
	"optimization_completed": {"Optimization Completed", ""},
	"zpe":                    {"Zero-point Energy", hartree},
	"ten":                    {"Thermal Energy", hartree},
	"ent":                    {"Thermal Enthalpy", hartree},
	"gib":                    {"Thermal Free Energy", hartree},
	"scf":                    {"SCF", hartree},
	"ex_en":                  {"Excitation energy", "eV"},
	"freq":                   {"Frequency", "cm^(-1)"},
	"wavelen":                {"Wavelength", "nm"},
	"mass":                   {"Reduced masses", "AMU"},
	"frc":                    {"Force constants", "mDyne/A"},
	"emang":                  {"E-M Angle", "deg"},
	"depolarp":               {"Depolar-P Raman", ""},
	"depolaru":               {"Depolar-U Raman", ""},
	"depp":                   {"Depolar-P ROA", ""},
	"depu":                   {"Depolar-U ROA", ""},
	"alpha2":                 {"Raman invariant Alpha2", raman4},
	"beta2":                  {"Raman invariant Beta2", raman4},
	"alphag":                 {"ROA invariant AlphaG", roa5},
	"gamma2":                 {"ROA invariant Gamma2", roa5},
	"delta2":                 {"ROA invariant Delta2", roa5},
	"cid1":                   {"CID ICPu/SCPu(180)", ""},
	"cid2":                   {"CID ICPd/SCPd(90)", ""},
	"cid3":                   {"CID DCPI(180)", ""},
	"rc180":                  {"Degree of circularity", ""},
	"eemang":                 {"E-M Angle", "deg"},
	"rot":                    {"Rot. Strength", esuDip},
	"dip":                    {"Dip. Strength", "10^(-40) esu^2 cm^2"},
	"iri":                    {"IR Intensity", "KM/Mole"},
	"ramanactiv":             {"Raman scatt. activities", "A^4/AMU"},
	"ramact":                 {"Raman scatt. activities", "A^4/AMU"},
	"roa1":                   {"ROA inten. ICPu/SCPu(180)", roaUnits},
	"raman1":                 {"Raman inten. ICPu/SCPu(180)", "K"},
	"roa2":                   {"ROA inten. ICPd/SCPd(90)", roaUnits},
	"raman2":                 {"Raman inten. ICPd/SCPd(90)", "K"},
	"roa3":                   {"ROA inten. DCPI(180)", roaUnits},
	"raman3":                 {"Raman inten. DCPI(180)", "K"},
	"vrot":                   {"Rot. (velo)", esuRot},
	"lrot":                   {"Rot. (length)", esuRot},
	"vosc":                   {"Osc. (velo)", ""},
	"losc":                   {"Osc. (length)", ""},
	"vdip":                   {"Dip. (velo)", esuDip},
	"ldip":                   {"Dip. (length)", esuDip},
	"transitions":            {"Transitions", ""},
	"last_read_geom":         {"Geometry", angstroms},
	"input_geom":             {"Input Geometry", angstroms},
	"optimized_geom":         {"Optimized Geometry", angstroms},
}

//FullName returns a human-readable name for the genre, or the genre itself if
//none is known.
func FullName(genre string) string {
	if d, ok := descriptions[genre]; ok {
		return d.full
	}
	return genre
}

//Units returns the units in which the genre's values are given, or an empty string.
func Units(genre string) string {
	return descriptions[genre].units
}
