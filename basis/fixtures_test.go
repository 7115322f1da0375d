package basis

// EvaluateT of polarImage, direct basis, L = 8, ell_max = 4.
var directEvaluateT = []float64{
	0.10761796756965061, 0.12291048439013429, 0.008362832928532312,
	-0.061944949416998796, -0.04833270251023004, 0.010536745895678934,
	0.03977736353127011, 0.0342010534288276, -0.006012776800440904,
	-0.02970710708242637, -0.015133414108487018, -0.00017519828386241632,
	-0.039873810849100126, -0.002570768388209969, -0.0006619385856480363,
	-0.009751489139835447, 0.0010803545314997662, 0.0007201192017035921,
	0.007533582352944884, 0.006045296170471752, 0.00024281532173870768,
	-0.017113358926069633, -0.01387391247999241, 0.001128016893193778,
}

// Evaluate of directEvaluateT.
var directEvaluate = []float64{
	0.0, 0.0, 0.0, 0.0,
	2.5028093387314242e-17, 0.0, 0.0, 0.0,
	0.0, 0.0, -0.006148804880092975, -0.01186105554800536,
	-0.0040693440997726475, -0.0005603001935224629, -0.0014024462110332192, 0.0,
	0.0, 0.005091502415437438, -0.010651286327598016, 0.005655824914342324,
	0.025118869451815698, 0.030492572431079796, 0.002138358342618005, 0.002597659768390938,
	0.0, 0.00887086046343531, -0.010395655106042971, 0.04987577942208903,
	0.036577223459499396, 0.0674289893792137, 0.011118448044708814, 0.005382915217511584,
	1.896406611069878e-17, -0.0009723997941603809, -0.01736227146528339, 0.09041544424502881,
	0.04694753906134858, 0.07442969107270106, 0.010034079492434112, 0.00517375474068846,
	0.0, 0.0018155777518074215, -0.041273255955513115, 0.047685699166563934,
	0.055537515235681685, 0.051172685964144905, -0.0028230406373487495, 0.008853855257082634,
	0.0, 0.007731109397421573, -0.026472035955084215, -0.03447570769255922,
	-0.02122388483164594, -0.015243022145042527, -0.014050816807167023, 0.004117565380130924,
	0.0, 0.0, 0.0039707431911434705, -0.006842422781890235,
	-0.0164590147099105, -0.015157381468461933, -0.005234172094778408, 0.0,
}

// EvaluateT(Evaluate(testutil.Alternating(24))), direct basis, L = 8, ell_max = 4.
var directRoundTrip = []float64{
	1.0054135477235604, -0.5139474726419986, 0.36154088508634596,
	-0.32241817513525256, 0.20290635494320736, -0.17291702226330002,
	0.15530739247270395, -0.12704532638992774, 0.11552098819948337,
	-0.10883023307696041, 0.09457971467281817, -0.09135922194453122,
	0.09897515670651254, -0.07222747359220856, 0.06816895009432423,
	-0.06504227488229854, 0.062606467275006, -0.06367270555673342,
	0.05546041820455279, -0.05604536853323483, 0.06395554532371506,
	-0.08798129545787531, 0.04535960306303799, -0.045894060924089194,
}

// EvaluateT of polarImage, fast basis, L = 8.
var fastEvaluateT = []float64{
	0.13977002751542356, 0.07869709306836557, -0.05365099655394616,
	0.015595786538969897, -0.0027895523708735266, 0.06265290524155785,
	0.006406071603397236, 0.0016238903305648195, -0.0452855465347649,
	-0.002607456230535905, 0.017455763698116786, -0.0024546589365469964,
	0.021932861073191284, 0.004571792880953936, -0.0025631534542073274,
	0.007155330903609861, 0.0013807264935350187, 0.00032945522195442417,
	0.00928344892879182, 0.002429958510062763, -0.00764517629820558,
	0.008352720619768139, -0.009915940631382217, -0.010284729916065013,
	-0.024287578656673223, -0.0024205299766107734, -0.002895317284561039,
	0.003040915417020049, 0.0052702360538364095, -0.0105591556013308,
	0.0021558763856758785, -0.004026824657332644, -0.004358003856013586,
	0.009128962510375933,
}

// Evaluate of fastEvaluateT.
var fastEvaluate = []float64{
	0.00024439052649227787, 0.00015218951185403572, 0.0005480780241533727, 0.003276404312219037,
	-0.00245821025070973, -0.0013216949808810038, 0.003178277402841237, -0.0010506635881181229,
	-0.0006936780158101303, -0.0007943771804736788, -0.007070747828761817, -0.005685891661249605,
	-0.01435317467978727, -0.003908098563966677, 0.006429762666205477, 0.00379680489557507,
	0.004024515062393934, 0.002094492471437741, -0.008697075473196855, 0.011452203110429183,
	0.019991363883509153, 0.03817156812635947, 0.009328945004698783, -0.003883453299412304,
	0.009542634341769801, -0.004331020035246352, -0.005566916579003026, 0.04387393409471549,
	0.040396384443321914, 0.060365464692484785, 0.01316575629936056, -0.01308345245654889,
	0.01235037361388348, -0.012415910130969054, -0.0059385477582474585, 0.07685791854222296,
	0.06441408665761643, 0.06132478651050508, 0.02341787973673503, -0.002618868445665298,
	0.011605890733988678, -0.005826203889898206, -0.02640889777144666, 0.03791018194154749,
	0.05970472421293384, 0.04224468427564297, 0.008990575434685224, 0.005637668494806814,
	0.001822453944462793, 0.0027788511014087114, -0.029832069256619173, -0.0361385096637833,
	-0.015116642609898132, -0.016409638091406838, -0.021882880346615455, 0.0031029938285792816,
	-0.0028839699759751463, 0.0030550335862507302, 0.0035444072144360764, -0.012467464428960344,
	-0.013366297584327788, -0.012090495985017742, -0.01047094181978803, 0.0019638711302963044,
}

// EvaluateT of polarImage, fast basis, L = 8, ell_max = 4.
var fastEvaluateTEllMax4 = []float64{
	0.13977002751542356, 0.07869709306836557, -0.05365099655394616,
	0.015595786538969897, -0.0027895523708735266, 0.06265290524155785,
	0.006406071603397236, 0.0016238903305648195, -0.0452855465347649,
	-0.002607456230535905, 0.017455763698116786, -0.0024546589365469964,
	0.021932861073191284, 0.004571792880953936, -0.0025631534542073274,
	0.007155330903609861, 0.0013807264935350187, 0.00032945522195442417,
	0.00928344892879182, 0.002429958510062763, -0.00764517629820558,
	0.008352720619768139, -0.009915940631382217, -0.010284729916065013,
}

// Image and transforms of the polar basis test case, L = 8, 4 radii, 32 angles.
var polarImage = []float64{
	0.0, 0.0, 0.0, 0.0,
	-1.08106869e-17, 0.0, 0.0, 0.0,
	0.0, 0.0, -0.00640456062, -0.0033296102,
	-0.0136887927, -0.00542770488, 0.00763680861, 0.0,
	0.0, 0.00316377602, -0.0093127335, 0.00946128404,
	0.019323922, 0.0379891953, 0.0106841173, -0.00236467925,
	0.0, 0.00172736955, -0.0100710814, 0.0493520304,
	0.0377702656, 0.0657365438, 0.00394739462, -0.00441228496,
	4.01551066e-18, -0.00308071647, -0.0161670565, 0.0866886286,
	0.0509898409, 0.0719313349, 0.0168313715, 0.00519180892,
	0.0, 0.00287262215, -0.0337732956, 0.0451706505,
	0.0572215879, 0.0463553081, 0.00186552175, 0.0112608805,
	0.0, 0.00277905016, -0.0277499404, -0.0402645374,
	-0.0154969139, -0.0166229153, -0.0207389259, 0.00664060546,
	0.0, 0.0, 0.00520080934, -0.0106788196,
	-0.0114761672, -0.0127443126, -0.0115563484, 0.0,
}

// EvaluateT of polarImage.
var polarEvaluateT = []complex128{
	complex(0.38243133, 6.66608316e-18), complex(0.3249317, -0.147839074),
	complex(0.14819172, 0.00378171168), complex(-0.22808599, 0.0529338933),
	complex(0.38243133, 6.66608316e-18), complex(0.34595014, -0.106355385),
	complex(0.15519289, -0.0475602164), complex(-0.22401193, 0.00433128746),
	complex(0.38243133, 6.66608316e-18), complex(0.36957165, -0.0569575709),
	complex(0.17389327, -0.0553498385), complex(-0.11601473, -0.0135405676),
	complex(0.38243133, 6.66608316e-18), complex(0.39045046, -0.00217911945),
	complex(0.18146449, -0.0137089189), complex(-0.02110144, 0.00665071497),
	complex(0.38243133, 6.66608316e-18), complex(0.4063995, 0.0521354967),
	complex(0.15674204, 0.0385815662), complex(-0.02886296, 0.0391489615),
	complex(0.38243133, 6.66608316e-18), complex(0.41872477, 0.0998946906),
	complex(0.11862477, 0.0515231952), complex(-0.05298751, 0.0195319478),
	complex(0.38243133, 6.66608316e-18), complex(0.43013599, 0.138307796),
	complex(0.10075763, 0.0125689289), complex(-0.04052728, -0.0566863498),
	complex(0.38243133, 6.66608316e-18), complex(0.44144497, 0.16882698),
	complex(0.11446016, -0.0453003874), complex(-0.03546515, -0.113544145),
	complex(0.38243133, 6.66608316e-18), complex(0.44960099, 0.194794929),
	complex(0.15053714, -0.0811915305), complex(-0.04800556, -0.115828804),
	complex(0.38243133, 6.66608316e-18), complex(0.44872328, 0.217957567),
	complex(0.19116871, -0.0799536373), complex(-0.05683092, -0.0972225058),
	complex(0.38243133, 6.66608316e-18), complex(0.43379428, 0.236681249),
	complex(0.21025378, -0.0548466438), complex(-0.05318826, -0.0854948014),
	complex(0.38243133, 6.66608316e-18), complex(0.40485577, 0.247073481),
	complex(0.18680217, -0.0331766116), complex(-0.06674163, -0.0794216591),
	complex(0.38243133, 6.66608316e-18), complex(0.36865853, 0.245913767),
	complex(0.13660805, -0.0368947359), complex(-0.11467046, -0.0849198927),
	complex(0.38243133, 6.66608316e-18), complex(0.33597018, 0.232971425),
	complex(0.1072859, -0.0624686168), complex(-0.12932565, -0.106139634),
	complex(0.38243133, 6.66608316e-18), complex(0.31616666, 0.210791785),
	complex(0.11876919, -0.0793812474), complex(-0.1094488, -0.120159845),
	complex(0.38243133, 6.66608316e-18), complex(0.31313975, 0.182190396),
	complex(0.14075481, -0.0585637416), complex(-0.15198775, -0.102156797),
	complex(0.38243133, -6.66608316e-18), complex(0.3249317, 0.147839074),
	complex(0.14819172, -0.00378171168), complex(-0.22808599, -0.0529338933),
	complex(0.38243133, -6.66608316e-18), complex(0.34595014, 0.106355385),
	complex(0.15519289, 0.0475602164), complex(-0.22401193, -0.00433128746),
	complex(0.38243133, -6.66608316e-18), complex(0.36957165, 0.0569575709),
	complex(0.17389327, 0.0553498385), complex(-0.11601473, 0.0135405676),
	complex(0.38243133, -6.66608316e-18), complex(0.39045046, 0.00217911945),
	complex(0.18146449, 0.0137089189), complex(-0.02110144, -0.00665071497),
	complex(0.38243133, -6.66608316e-18), complex(0.4063995, -0.0521354967),
	complex(0.15674204, -0.0385815662), complex(-0.02886296, -0.0391489615),
	complex(0.38243133, -6.66608316e-18), complex(0.41872477, -0.0998946906),
	complex(0.11862477, -0.0515231952), complex(-0.05298751, -0.0195319478),
	complex(0.38243133, -6.66608316e-18), complex(0.43013599, -0.138307796),
	complex(0.10075763, -0.0125689289), complex(-0.04052728, 0.0566863498),
	complex(0.38243133, -6.66608316e-18), complex(0.44144497, -0.16882698),
	complex(0.11446016, 0.0453003874), complex(-0.03546515, 0.113544145),
	complex(0.38243133, -6.66608316e-18), complex(0.44960099, -0.194794929),
	complex(0.15053714, 0.0811915305), complex(-0.04800556, 0.115828804),
	complex(0.38243133, -6.66608316e-18), complex(0.44872328, -0.217957567),
	complex(0.19116871, 0.0799536373), complex(-0.05683092, 0.0972225058),
	complex(0.38243133, -6.66608316e-18), complex(0.43379428, -0.236681249),
	complex(0.21025378, 0.0548466438), complex(-0.05318826, 0.0854948014),
	complex(0.38243133, -6.66608316e-18), complex(0.40485577, -0.247073481),
	complex(0.18680217, 0.0331766116), complex(-0.06674163, 0.0794216591),
	complex(0.38243133, -6.66608316e-18), complex(0.36865853, -0.245913767),
	complex(0.13660805, 0.0368947359), complex(-0.11467046, 0.0849198927),
	complex(0.38243133, -6.66608316e-18), complex(0.33597018, -0.232971425),
	complex(0.1072859, 0.0624686168), complex(-0.12932565, 0.106139634),
	complex(0.38243133, -6.66608316e-18), complex(0.31616666, -0.210791785),
	complex(0.11876919, 0.0793812474), complex(-0.1094488, 0.120159845),
	complex(0.38243133, -6.66608316e-18), complex(0.31313975, -0.182190396),
	complex(0.14075481, 0.0585637416), complex(-0.15198775, 0.102156797),
}

// Input to Evaluate; the conjugate-symmetric counterpart of polarEvaluateT.
var polarCoefficients = []complex128{
	complex(0.38243133, -6.66608316e-18), complex(0.3249317, 0.147839074),
	complex(0.14819172, -0.00378171168), complex(-0.22808599, -0.0529338933),
	complex(0.38243133, -6.66608316e-18), complex(0.34595014, 0.106355385),
	complex(0.15519289, 0.0475602164), complex(-0.22401193, -0.00433128746),
	complex(0.38243133, -6.66608316e-18), complex(0.36957165, 0.0569575709),
	complex(0.17389327, 0.0553498385), complex(-0.11601473, 0.0135405676),
	complex(0.38243133, -6.66608316e-18), complex(0.39045046, 0.00217911945),
	complex(0.18146449, 0.0137089189), complex(-0.02110144, -0.00665071497),
	complex(0.38243133, -6.66608316e-18), complex(0.4063995, -0.0521354967),
	complex(0.15674204, -0.0385815662), complex(-0.02886296, -0.0391489615),
	complex(0.38243133, -6.66608316e-18), complex(0.41872477, -0.0998946906),
	complex(0.11862477, -0.0515231952), complex(-0.05298751, -0.0195319478),
	complex(0.38243133, -6.66608316e-18), complex(0.43013599, -0.138307796),
	complex(0.10075763, -0.0125689289), complex(-0.04052728, 0.0566863498),
	complex(0.38243133, -6.66608316e-18), complex(0.44144497, -0.16882698),
	complex(0.11446016, 0.0453003874), complex(-0.03546515, 0.113544145),
	complex(0.38243133, -6.66608316e-18), complex(0.44960099, -0.194794929),
	complex(0.15053714, 0.0811915305), complex(-0.04800556, 0.115828804),
	complex(0.38243133, -6.66608316e-18), complex(0.44872328, -0.217957567),
	complex(0.19116871, 0.0799536373), complex(-0.05683092, 0.0972225058),
	complex(0.38243133, -6.66608316e-18), complex(0.43379428, -0.236681249),
	complex(0.21025378, 0.0548466438), complex(-0.05318826, 0.0854948014),
	complex(0.38243133, -6.66608316e-18), complex(0.40485577, -0.247073481),
	complex(0.18680217, 0.0331766116), complex(-0.06674163, 0.0794216591),
	complex(0.38243133, -6.66608316e-18), complex(0.36865853, -0.245913767),
	complex(0.13660805, 0.0368947359), complex(-0.11467046, 0.0849198927),
	complex(0.38243133, -6.66608316e-18), complex(0.33597018, -0.232971425),
	complex(0.1072859, 0.0624686168), complex(-0.12932565, 0.106139634),
	complex(0.38243133, -6.66608316e-18), complex(0.31616666, -0.210791785),
	complex(0.11876919, 0.0793812474), complex(-0.1094488, 0.120159845),
	complex(0.38243133, -6.66608316e-18), complex(0.31313975, -0.182190396),
	complex(0.14075481, 0.0585637416), complex(-0.15198775, 0.102156797),
	complex(0.38243133, 6.66608316e-18), complex(0.3249317, -0.147839074),
	complex(0.14819172, 0.00378171168), complex(-0.22808599, 0.0529338933),
	complex(0.38243133, 6.66608316e-18), complex(0.34595014, -0.106355385),
	complex(0.15519289, -0.0475602164), complex(-0.22401193, 0.00433128746),
	complex(0.38243133, 6.66608316e-18), complex(0.36957165, -0.0569575709),
	complex(0.17389327, -0.0553498385), complex(-0.11601473, -0.0135405676),
	complex(0.38243133, 6.66608316e-18), complex(0.39045046, -0.00217911945),
	complex(0.18146449, -0.0137089189), complex(-0.02110144, 0.00665071497),
	complex(0.38243133, 6.66608316e-18), complex(0.4063995, 0.0521354967),
	complex(0.15674204, 0.0385815662), complex(-0.02886296, 0.0391489615),
	complex(0.38243133, 6.66608316e-18), complex(0.41872477, 0.0998946906),
	complex(0.11862477, 0.0515231952), complex(-0.05298751, 0.0195319478),
	complex(0.38243133, 6.66608316e-18), complex(0.43013599, 0.138307796),
	complex(0.10075763, 0.0125689289), complex(-0.04052728, -0.0566863498),
	complex(0.38243133, 6.66608316e-18), complex(0.44144497, 0.16882698),
	complex(0.11446016, -0.0453003874), complex(-0.03546515, -0.113544145),
	complex(0.38243133, 6.66608316e-18), complex(0.44960099, 0.194794929),
	complex(0.15053714, -0.0811915305), complex(-0.04800556, -0.115828804),
	complex(0.38243133, 6.66608316e-18), complex(0.44872328, 0.217957567),
	complex(0.19116871, -0.0799536373), complex(-0.05683092, -0.0972225058),
	complex(0.38243133, 6.66608316e-18), complex(0.43379428, 0.236681249),
	complex(0.21025378, -0.0548466438), complex(-0.05318826, -0.0854948014),
	complex(0.38243133, 6.66608316e-18), complex(0.40485577, 0.247073481),
	complex(0.18680217, -0.0331766116), complex(-0.06674163, -0.0794216591),
	complex(0.38243133, 6.66608316e-18), complex(0.36865853, 0.245913767),
	complex(0.13660805, -0.0368947359), complex(-0.11467046, -0.0849198927),
	complex(0.38243133, 6.66608316e-18), complex(0.33597018, 0.232971425),
	complex(0.1072859, -0.0624686168), complex(-0.12932565, -0.106139634),
	complex(0.38243133, 6.66608316e-18), complex(0.31616666, 0.210791785),
	complex(0.11876919, -0.0793812474), complex(-0.1094488, -0.120159845),
	complex(0.38243133, 6.66608316e-18), complex(0.31313975, 0.182190396),
	complex(0.14075481, -0.0585637416), complex(-0.15198775, -0.102156797),
}

// Evaluate of polarCoefficients.
var polarEvaluate = []float64{
	9.8593804, 7.94242903, 7.23336975, 7.33314303,
	7.41260132, 7.59483694, 7.94830958, 9.47324547,
	7.27801941, 8.29797686, 7.17234599, 7.31082685,
	7.04347376, 6.91956664, 8.12234596, 8.36258646,
	8.76188511, 10.69546884, 8.37029969, 9.87512737,
	9.73946157, 6.56646752, 5.69555713, 8.77758976,
	10.42069436, 12.3649092, 14.23951952, 20.41736454,
	22.32664939, 18.11535113, 7.95059873, 8.79515046,
	11.23152882, 12.61468396, 17.92585027, 25.82097043,
	26.4633412, 25.11167661, 11.90634511, 9.05131389,
	10.7048523, 11.73534566, 16.53838035, 25.13242621,
	23.58037996, 21.37129485, 12.1024389, 10.26313743,
	8.24162377, 11.90490143, 14.82292441, 19.50174891,
	17.69291969, 15.06781768, 10.4669263, 10.2082326,
	5.26532858, 9.60999648, 12.68642275, 12.42354237,
	10.87648517, 10.60647963, 9.11026567, 8.53250276,
}
