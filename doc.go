/*
 * doc.go, part of goconformers.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package conformers is the main package of the goconformers library. It keeps the data
extracted from the output of many calculations of the same molecule, one per conformer,
and turns it into arrays and spectra.


	**goconformers Capabilities**


    Reads Gaussian output files, plain or compressed (gzip, zstd, lz4), concurrently.
	(package extraction)

    Keeps the data of each conformer, in order, and marks conformers as kept or not kept.
	Conformers can be trimmed off by many criteria: failed optimization or abnormal
	termination, imaginary frequencies, stoichiometry, size of their data, energy
	range, missing data, and duplicated geometries (by RMSD, compared in windows
	of conformers close in energy).

    Builds typed arrays of each genre of data for the kept conformers. Conformers
	with data of different sizes can be reconciled, the missing values are masked.
	(packages arrays and masked)

    Calculates Boltzmann populations from energies, and IR, VCD, Raman, ROA, UV
	and ECD spectra from the calculated activities, fitting Gaussian or Lorentzian
	bands. Spectra can be averaged using the populations, scaled and shifted to
	match an experimental spectrum.
	(package spectral)

    Superimposes geometries with the Kabsch algorithm, and calculates RMSD.
	(packages v3 and geometry)

    Reads settings and spectra parameters from TOML files, or from the traditional
	"name = value" parameters files. (package config)


A typical session reads the output files into a Conformers, trims it, and asks
for the arrays needed:

	B, _ := extraction.NewBatch("gaussian", 4)
	C := conformers.New()
	C.Extract(ctx, B, files)
	C.TrimNonNormalTermination()
	C.TrimImaginaryFrequencies()
	arr, err := C.Arrayed("gib")
	pops := arr.(*arrays.Energies).Populations()

Arrays are snapshots: they never change when the collection does.
*/
package conformers
